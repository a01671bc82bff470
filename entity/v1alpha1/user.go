// Package v1alpha1 contains the catalog entity types this importer populates.
// +groupName=backstage.io
// +versionName=v1alpha1
package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	// APIVersion is the catalog API version every entity produced by this
	// importer carries.
	APIVersion = "backstage.io/v1alpha1"

	// KindUser is the entity kind for user records.
	KindUser = "User"
)

const (
	// AnnotationLocation records where an entity was read from.
	AnnotationLocation = "backstage.io/managed-by-location"

	// AnnotationOriginLocation records where an entity was originally read
	// from, surviving later relocations.
	AnnotationOriginLocation = "backstage.io/managed-by-origin-location"
)

// UserEntity is the catalog representation of a single GitLab user or group
// member. It is constructed fresh per importer call and handed to the
// ingestion pipeline for further processing; nothing in this module mutates
// an entity after it has been returned.
type UserEntity struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitzero"`

	Spec UserSpec `json:"spec"`
}

// UserSpec holds the catalog-facing parts of a user entity.
type UserSpec struct {
	// Profile carries the optional display fields of the user.
	Profile UserProfile `json:"profile"`

	// MemberOf lists the groups the user belongs to. The importer always
	// initializes it empty; a later ingestion stage fills it in.
	MemberOf []string `json:"memberOf"`
}

// UserProfile mirrors the optional profile fields of the source record.
// Fields are only set when the source provides a value.
type UserProfile struct {
	DisplayName string `json:"displayName,omitempty"`
	Picture     string `json:"picture,omitempty"`
	Email       string `json:"email,omitempty"`
}
