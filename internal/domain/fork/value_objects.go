package fork

import (
	"fmt"
	"strings"
)

// RepositoryRef is a value object identifying a repository by owner and name
type RepositoryRef struct {
	owner string
	name  string
}

// NewRepositoryRef creates a new RepositoryRef with validation
func NewRepositoryRef(owner, name string) (RepositoryRef, error) {
	owner = strings.TrimSpace(owner)
	name = strings.TrimSpace(name)

	if owner == "" {
		return RepositoryRef{}, ErrInvalidRepositoryRef("owner", fmt.Errorf("repository owner cannot be empty"))
	}
	if name == "" {
		return RepositoryRef{}, ErrInvalidRepositoryRef("name", fmt.Errorf("repository name cannot be empty"))
	}
	if len(name) > 100 {
		return RepositoryRef{}, ErrInvalidRepositoryRef("name", fmt.Errorf("repository name too long (max 100 characters)"))
	}

	return RepositoryRef{owner: owner, name: name}, nil
}

func (r RepositoryRef) Owner() string {
	return r.owner
}

func (r RepositoryRef) Name() string {
	return r.name
}

// FullName returns the owner/name form used by the hosting provider
func (r RepositoryRef) FullName() string {
	return r.owner + "/" + r.name
}

func (r RepositoryRef) IsZero() bool {
	return r.owner == "" && r.name == ""
}

func (r RepositoryRef) Equals(other RepositoryRef) bool {
	return r.owner == other.owner && r.name == other.name
}

func (r RepositoryRef) String() string {
	return r.FullName()
}

// UpstreamLink points at the immediate parent of a fork
type UpstreamLink struct {
	Ref RepositoryRef
	URL string
}

// FullName returns the parent's owner/name
func (u UpstreamLink) FullName() string {
	return u.Ref.FullName()
}

// ForkCandidate is a discovered fork owned by one of the identity's namespaces
type ForkCandidate struct {
	Owner string
	Name  string
	URL   string
}

// Ref returns the candidate's owner/name pair
func (c ForkCandidate) Ref() RepositoryRef {
	return RepositoryRef{owner: c.Owner, name: c.Name}
}

// Equals compares candidates structurally on owner and name
func (c ForkCandidate) Equals(other ForkCandidate) bool {
	return c.Owner == other.Owner && c.Name == other.Name
}

// Identity is the set of namespaces the authenticated user may own repositories under
type Identity struct {
	login         string
	organizations []string
	members       map[string]struct{}
}

// NewIdentity creates an Identity for the given login and organization logins.
// Duplicate and empty organization logins are ignored.
func NewIdentity(login string, organizations ...string) Identity {
	id := Identity{
		login:   login,
		members: map[string]struct{}{strings.ToLower(login): {}},
	}
	for _, org := range organizations {
		key := strings.ToLower(org)
		if org == "" {
			continue
		}
		if _, ok := id.members[key]; ok {
			continue
		}
		id.members[key] = struct{}{}
		id.organizations = append(id.organizations, org)
	}
	return id
}

func (i Identity) Login() string {
	return i.login
}

func (i Identity) Organizations() []string {
	out := make([]string, len(i.organizations))
	copy(out, i.organizations)
	return out
}

// Namespaces returns the personal login followed by the organization logins
func (i Identity) Namespaces() []string {
	return append([]string{i.login}, i.organizations...)
}

// Owns reports whether login is one of the identity's namespaces.
// GitHub logins are case-insensitive.
func (i Identity) Owns(login string) bool {
	_, ok := i.members[strings.ToLower(login)]
	return ok
}

// IsSelf reports whether owner is the identity's personal login
func (i Identity) IsSelf(owner string) bool {
	return strings.EqualFold(i.login, owner)
}
