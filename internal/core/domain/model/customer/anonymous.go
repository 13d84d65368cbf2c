package customer

import "ordering/internal/core/domain/model/kernel"

// Values written over personal data when a customer is archived.
const (
	AnonymousFirstName = "Anonymous"
	AnonymousLastName  = "Anonymous"
	AnonymousEmail     = "anonymous@anonymous.com"
	AnonymousPhone     = "000-000-0000"
	AnonymousDocument  = "000-000-0000"
)

//nolint:gochecknoglobals // fixed anonymization values
var (
	anonymousFullName = must(kernel.NewFullName(AnonymousFirstName, AnonymousLastName))
	anonymousEmail    = must(kernel.NewEmail(AnonymousEmail))
	anonymousPhone    = must(kernel.NewPhone(AnonymousPhone))
	anonymousDocument = must(kernel.NewDocument(AnonymousDocument))
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
