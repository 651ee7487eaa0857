package models

type SocialLinks struct {
	ID        string `json:"_id,omitempty"`
	WhatsApp  string `json:"whatsapp"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
	Facebook  string `json:"facebook"`
}

// SocialLink is a single platform entry as rendered in view mode.
type SocialLink struct {
	Platform string
	Label    string
	URL      string
}

// HasID reports whether the record already exists on the backend.
func (s SocialLinks) HasID() bool {
	return s.ID != ""
}

// Entries returns the platforms that carry a URL, in display order.
func (s SocialLinks) Entries() []SocialLink {
	all := []SocialLink{
		{Platform: "whatsapp", Label: "WhatsApp", URL: s.WhatsApp},
		{Platform: "twitter", Label: "Twitter", URL: s.Twitter},
		{Platform: "instagram", Label: "Instagram", URL: s.Instagram},
		{Platform: "linkedin", Label: "LinkedIn", URL: s.LinkedIn},
		{Platform: "facebook", Label: "Facebook", URL: s.Facebook},
	}
	var out []SocialLink
	for _, l := range all {
		if l.URL != "" {
			out = append(out, l)
		}
	}
	return out
}
