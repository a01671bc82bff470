package orgimporter

import (
	"net/url"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/crossplane/function-sdk-go/errors"
	"github.com/simon-fredrich/gitlab-org-importer/entity/v1alpha1"
	"github.com/simon-fredrich/gitlab-org-importer/internal"
)

// ErrHostMismatch is returned when the target URL points at a different host
// than the one the client is configured for.
var ErrHostMismatch = errors.New("target host does not match the configured client host")

// ReadUsers reads the users behind the given target URL as catalog entities.
//
// The target's host must match the client's base host. A target referencing a
// group resolves to that group's member listing, including inherited members
// unless opts.Inherited is explicitly false. A target pointing at the bare
// instance root resolves to the instance-wide user listing.
func ReadUsers(client *Client, target string, opts *UserIngestOptions) ([]*v1alpha1.UserEntity, error) {
	targetURL, err := url.Parse(target)
	if err != nil {
		return nil, errors.Errorf("cannot parse target url %q: %w", target, err)
	}

	base := client.BaseURL()
	if targetURL.Host != base.Host {
		return nil, errors.Errorf("target host %q does not match client host %q: %w", targetURL.Host, base.Host, ErrHostMismatch)
	}

	if opts == nil {
		opts = &UserIngestOptions{}
	}

	groupID := internal.ParseGroupURL(targetURL, base)
	if groupID == "" {
		return GetInstanceUsers(client, opts)
	}

	scoped := *opts
	if scoped.Inherited == nil {
		scoped.Inherited = gitlab.Ptr(true)
	}
	return GetGroupMembers(client, groupID, &scoped)
}
