package rest

type CreateTaskIn struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"` // empty => todo
}

// PatchTaskIn carries only the fields the caller sent.
type PatchTaskIn struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"` // todo|inprogress|done
}
