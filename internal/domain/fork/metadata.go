package fork

// RepositoryMetadata is the resolved fork state of a repository.
// It is fetched fresh for every run and never cached.
type RepositoryMetadata struct {
	ref    RepositoryRef
	isFork bool
	parent *UpstreamLink
	source *RepositoryRef
}

// NewRepositoryMetadata describes a repository that is not a fork
func NewRepositoryMetadata(ref RepositoryRef) RepositoryMetadata {
	return RepositoryMetadata{ref: ref}
}

// NewForkMetadata describes a fork. parent and source may be nil when the
// provider omits them; a source equal to ref is dropped.
func NewForkMetadata(ref RepositoryRef, parent *UpstreamLink, source *RepositoryRef) RepositoryMetadata {
	m := RepositoryMetadata{ref: ref, isFork: true}
	if parent != nil && !parent.Ref.Equals(ref) {
		p := *parent
		m.parent = &p
	}
	if source != nil && !source.Equals(ref) {
		s := *source
		m.source = &s
	}
	return m
}

func (m RepositoryMetadata) Ref() RepositoryRef {
	return m.ref
}

func (m RepositoryMetadata) IsFork() bool {
	return m.isFork
}

// Parent returns the immediate fork parent, if any
func (m RepositoryMetadata) Parent() (UpstreamLink, bool) {
	if !m.isFork || m.parent == nil {
		return UpstreamLink{}, false
	}
	return *m.parent, true
}

// Source returns the root of the fork network, if the provider reported one
func (m RepositoryMetadata) Source() (RepositoryRef, bool) {
	if !m.isFork || m.source == nil {
		return RepositoryRef{}, false
	}
	return *m.source, true
}

// SearchSource is the repository whose forks are enumerated: the fork
// network root when known, otherwise the repository itself.
func (m RepositoryMetadata) SearchSource() RepositoryRef {
	if src, ok := m.Source(); ok {
		return src
	}
	return m.ref
}

// Resolution is the output of resolving a repository for an authenticated user
type Resolution struct {
	Login    string
	Metadata RepositoryMetadata
}
