package attendance

import (
	"testing"

	"pdks-backend/internal/apperr"
)

func TestListRejectsUnknownStatusFilter(t *testing.T) {
	// Tanınmayan status değeri sessizce boş liste yerine bad_request döner.
	// Kontrol sorgu kurulmadan yapılır, db'ye hiç dokunulmaz.
	_, _, err := List(nil, ListFilters{OrganizationID: 1, Status: "uykuda"})
	requireKind(t, err, apperr.KindBadRequest)
}
