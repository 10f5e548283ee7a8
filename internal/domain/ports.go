package domain

// ListingProvider returns the top-level entries of a package root.
type ListingProvider interface {
	List(root string, ignore ...string) (Listing, error)
}

// ConfigLoader reads the optional project configuration from a root.
type ConfigLoader interface {
	Load(root string) (ProjectConfig, error)
}

// Scaffolder creates placeholder artifacts under a root. It attempts every
// target and returns the ones it created along with a joined error for the
// rest.
type Scaffolder interface {
	Create(root string, targets []ScaffoldTarget) ([]Artifact, error)
}

// GitInfo exposes repository metadata for a root.
type GitInfo interface {
	CommitHash(root string) (string, error)
}
