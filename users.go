package orgimporter

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/crossplane/function-sdk-go/errors"
	"github.com/simon-fredrich/gitlab-org-importer/entity/v1alpha1"
)

// ErrNotSelfManaged is returned when an instance-wide user listing is
// attempted against the shared SaaS offering, which does not expose it.
var ErrNotSelfManaged = errors.New("instance user listing is only supported for self-managed hosts")

const usersPerPage = 100

// UserIngestOptions configures a user read.
type UserIngestOptions struct {
	// Inherited includes members inherited from ancestor groups in group
	// member listings. ReadUsers defaults it to true when unset.
	Inherited *bool

	// Blocked includes blocked accounts in group member listings.
	Blocked bool

	// Transformer overrides the default user mapping when non-nil.
	Transformer UserTransformer
}

type listGroupMembersOptions struct {
	Blocked bool `url:"blocked" json:"blocked"`
	gitlab.ListOptions
}

type listInstanceUsersOptions struct {
	Active bool `url:"active" json:"active"`
	gitlab.ListOptions
}

// GetGroupMembers returns the members of the group with the given ID or full
// path as catalog entities, in the order the listing API returns them. Bot
// accounts are excluded.
func GetGroupMembers(client *Client, groupID string, opts *UserIngestOptions) ([]*v1alpha1.UserEntity, error) {
	if opts == nil {
		opts = &UserIngestOptions{}
	}

	path := fmt.Sprintf("groups/%s/members", gitlab.PathEscape(groupID))
	if opts.Inherited != nil && *opts.Inherited {
		path += "/all"
	}

	newOpt := func(lo gitlab.ListOptions) interface{} {
		return &listGroupMembersOptions{Blocked: opts.Blocked, ListOptions: lo}
	}

	entities, err := client.collectUsers(path, newOpt, opts.Transformer)
	if err != nil {
		return nil, errors.Errorf("cannot list members of group %q: %w", groupID, err)
	}
	return entities, nil
}

// GetInstanceUsers returns every active user of a self-managed instance as
// catalog entities. It fails with ErrNotSelfManaged before issuing any
// request when the client points at the shared SaaS host.
func GetInstanceUsers(client *Client, opts *UserIngestOptions) ([]*v1alpha1.UserEntity, error) {
	if opts == nil {
		opts = &UserIngestOptions{}
	}
	if !client.IsSelfManaged() {
		return nil, errors.Errorf("cannot list users of host %q: %w", client.BaseURL().Host, ErrNotSelfManaged)
	}

	// The blocked option is not forwarded here; only group member listings
	// honor it.
	newOpt := func(lo gitlab.ListOptions) interface{} {
		return &listInstanceUsersOptions{Active: true, ListOptions: lo}
	}

	entities, err := client.collectUsers("users", newOpt, opts.Transformer)
	if err != nil {
		return nil, errors.Errorf("cannot list instance users: %w", err)
	}
	return entities, nil
}

// collectUsers applies the transformer to every record of a paginated user
// listing and accumulates the non-nil results, preserving arrival order.
func (c *Client) collectUsers(path string, newOpt func(gitlab.ListOptions) interface{}, transformer UserTransformer) ([]*v1alpha1.UserEntity, error) {
	entities := []*v1alpha1.UserEntity{}

	err := c.forEachUser(path, newOpt, func(user *gitlab.User) error {
		entity, err := transformUser(user, transformer)
		if err != nil {
			return errors.Errorf("cannot transform user %q: %w", user.Username, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entities, nil
}

// forEachUser drives a paginated user listing endpoint, invoking visit for
// every record in arrival order. Pages are fetched sequentially, one at a
// time; the iteration is single-pass and aborts on the first error.
func (c *Client) forEachUser(path string, newOpt func(gitlab.ListOptions) interface{}, visit func(*gitlab.User) error) error {
	page := 1

	// Iterate over all pages of the listing.
	for {
		opt := newOpt(gitlab.ListOptions{
			PerPage: usersPerPage,
			Page:    page,
		})

		req, err := c.api.NewRequest(http.MethodGet, path, opt, nil)
		if err != nil {
			return errors.Errorf("cannot build request for %s: %w", path, err)
		}

		users := []*gitlab.User{}
		resp, err := c.api.Do(req, &users)
		if err != nil {
			log.Error().Err(err).Msgf("gitlab resp: %+v", resp)
			return err
		}

		for _, user := range users {
			if err := visit(user); err != nil {
				return err
			}
		}

		if resp.CurrentPage >= resp.TotalPages {
			break
		}
		page++
	}

	return nil
}
