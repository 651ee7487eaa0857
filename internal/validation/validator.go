package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// New returns a validator with the panel's struct-level rules registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// form field names are used in messages instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	v.RegisterStructValidation(productFormStructValidation, ProductForm{})

	return v
}

// productFormStructValidation checks the rules that span fields or need
// parsing: a resolvable category and a non-negative decimal price.
func productFormStructValidation(sl validatorv10.StructLevel) {
	f := sl.Current().Interface().(ProductForm)

	if f.category() == "" {
		sl.ReportError(f.Category, "category", "Category", "category_resolved", "")
	}

	if raw := strings.TrimSpace(f.Price); raw != "" {
		price, err := decimal.NewFromString(raw)
		switch {
		case err != nil:
			sl.ReportError(f.Price, "price", "Price", "decimal", "")
		case strings.ContainsAny(raw, "eE") || price.Exponent() < minPriceExponent || !price.Abs().LessThan(maxPrice):
			sl.ReportError(f.Price, "price", "Price", "price_format", "")
		case price.IsNegative():
			sl.ReportError(f.Price, "price", "Price", "non_negative", "")
		}
	}
}

// Prices are plain decimals below one billion with at most two fraction
// digits. Exponent notation is refused: the backend gets every digit.
const minPriceExponent = -2

var maxPrice = decimal.New(1, 9)

var messages = map[string]string{
	"category_resolved": "Please select a category or enter a custom one.",
	"decimal":           "Price must be a number.",
	"non_negative":      "Price cannot be negative.",
	"price_format":      "Price must be below 1,000,000,000 with at most two decimal places.",
	"url":               "%s must be a valid URL.",
	"required":          "%s is required.",
}

// Messages converts a validation error into sentences for the operator,
// sorted so the order is stable between requests.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var ve validatorv10.ValidationErrors
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(ve))
	for _, fe := range ve {
		tmpl, ok := messages[fe.Tag()]
		if !ok {
			out = append(out, fmt.Sprintf("%s is invalid.", label(fe.Field())))
			continue
		}
		if strings.Contains(tmpl, "%s") {
			out = append(out, fmt.Sprintf(tmpl, label(fe.Field())))
		} else {
			out = append(out, tmpl)
		}
	}
	sort.Strings(out)
	return out
}

var labels = map[string]string{
	"name":        "Product name",
	"price":       "Price",
	"description": "Description",
	"category":    "Category",
	"whatsapp":    "WhatsApp URL",
	"twitter":     "Twitter URL",
	"instagram":   "Instagram URL",
	"linkedin":    "LinkedIn URL",
	"facebook":    "Facebook URL",
}

func label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	return field
}
