package domain

// Section groups content and members. Sections have no owner: every
// mutation goes through the admin path, never an ownership check.
type Section struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug,omitempty"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	MemberIDs   []string `json:"member_ids,omitempty"`
}
