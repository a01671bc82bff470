// Package orgimporter reads GitLab users and group members and maps them into
// catalog User entities.
//
// The package offers:
//   - ReadUsers: Inspects a target URL and routes to either a group-member or
//     an instance-wide user listing.
//   - GetGroupMembers: Lists the members of a single group, optionally
//     including members inherited from ancestor groups.
//   - GetInstanceUsers: Lists every active user of a self-managed instance.
//   - DefaultUserTransform: The default mapping from a GitLab user record to
//     a catalog UserEntity, replaceable per call via UserTransformer.
//
// Listings are paginated; pages are fetched sequentially and records are
// transformed in arrival order. Any listing or transform error aborts the
// whole call, discarding entities collected so far.
//
// The package relies on:
//   - gitlab.com/gitlab-org/api/client-go for GitLab API interactions
//   - github.com/simon-fredrich/gitlab-org-importer/entity/v1alpha1 for the entity shape
//   - github.com/crossplane/function-sdk-go/errors for error handling
//
// This package is intended for use by a catalog ingestion pipeline.
package orgimporter
