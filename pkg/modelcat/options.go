package modelcat

// LoadOptions configures one load run.
type LoadOptions struct {
	// ParentID is the catalog item the new records are created under.
	// Empty means the session user's personal container.
	ParentID string
	// ContainerTitle, when set, creates a fresh container of that title
	// under ParentID and loads records into it. Any pre-existing child
	// container with the same title is deleted first, along with its
	// children, without confirmation.
	ContainerTitle string
	// PageSize bounds listing pages fetched while replacing a container.
	PageSize int
}
