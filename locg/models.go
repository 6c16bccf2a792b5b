package locg

// Comic is a single entry extracted from a comic list fragment.
// Issue-mode entries carry the full set of fields. Series-mode entries only
// carry Name, Publisher, URL, and Cover.
type Comic struct {
	Name        string `json:"name"`
	Publisher   string `json:"publisher,omitempty"`
	URL         string `json:"url"`
	Cover       string `json:"cover"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
	// Rating, Pulls, and POTW are nil when the fragment carries no value for
	// them. Zero is a legitimate value, so nil is the only "absent" marker.
	Rating *float64 `json:"rating,omitempty"`
	Pulls  *int     `json:"pulls,omitempty"`
	POTW   *int     `json:"potw,omitempty"`
}

// User holds the identity fields extracted from a profile page.
type User struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Avatar string `json:"avatar"`
}
