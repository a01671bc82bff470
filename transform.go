package orgimporter

import (
	"github.com/crossplane/crossplane-runtime/v2/pkg/meta"
	gitlab "gitlab.com/gitlab-org/api/client-go"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/simon-fredrich/gitlab-org-importer/entity/v1alpha1"
)

// TransformFunc maps one GitLab user record to a catalog entity. A nil result
// means the record produces no entity.
type TransformFunc func(user *gitlab.User) *v1alpha1.UserEntity

// UserTransformer replaces the default user mapping for a single importer
// call. Transform receives the record together with the default mapping so an
// implementation can delegate to it and only adjust the result. Returning a
// nil entity drops the record; returning an error aborts the whole call.
type UserTransformer interface {
	Transform(user *gitlab.User, defaultTransform TransformFunc) (*v1alpha1.UserEntity, error)
}

// DefaultUserTransform maps a GitLab user record to a catalog UserEntity.
// Bot accounts produce no entity. Profile fields are only set when the source
// record provides a value; a confirmed primary email takes precedence over
// the public one.
//
// The transform is deterministic and has no side effects.
func DefaultUserTransform(user *gitlab.User) *v1alpha1.UserEntity {
	if user.Bot {
		return nil
	}

	entity := &v1alpha1.UserEntity{
		TypeMeta: metav1.TypeMeta{
			APIVersion: v1alpha1.APIVersion,
			Kind:       v1alpha1.KindUser,
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: user.Username,
		},
		Spec: v1alpha1.UserSpec{
			MemberOf: []string{},
		},
	}

	meta.AddAnnotations(entity, map[string]string{
		v1alpha1.AnnotationLocation:       user.WebURL,
		v1alpha1.AnnotationOriginLocation: user.WebURL,
	})

	if user.Name != "" {
		entity.Spec.Profile.DisplayName = user.Name
	}
	if user.AvatarURL != "" {
		entity.Spec.Profile.Picture = user.AvatarURL
	}
	if user.PublicEmail != "" {
		entity.Spec.Profile.Email = user.PublicEmail
	}
	if user.Email != "" {
		entity.Spec.Profile.Email = user.Email
	}

	return entity
}

// transformUser applies the override when one is supplied, otherwise the
// default mapping.
func transformUser(user *gitlab.User, transformer UserTransformer) (*v1alpha1.UserEntity, error) {
	if transformer == nil {
		return DefaultUserTransform(user), nil
	}
	return transformer.Transform(user, DefaultUserTransform)
}
