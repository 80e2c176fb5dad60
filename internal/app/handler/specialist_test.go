package handler_test

import (
	"net/http"
	"testing"

	"marketplace/internal/app/dto"
	"marketplace/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *apiEnv) createServiceMaster(t *testing.T, admin, title string) dto.ServiceMasterResponse {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/service-offerings", gin.H{
		"title": title, "description": "Description of " + title,
	}, admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeData[dto.ServiceMasterResponse](t, w)
}

func specialistBody(title string, price float64, serviceIDs ...uuid.UUID) gin.H {
	return gin.H{
		"title":         title,
		"description":   "Experienced specialist offering " + title,
		"base_price":    price,
		"duration_days": 3,
		"service_ids":   serviceIDs,
	}
}

func TestSpecialists_Lifecycle(t *testing.T) {
	env := newAPI(t, envOptions{})
	env.seedTiers(t)
	_, admin := env.tokenFor(t, role.Admin)
	ownerID, owner := env.tokenFor(t, role.Specialist)
	_, stranger := env.tokenFor(t, role.Specialist)

	svc := env.createServiceMaster(t, admin, "Tax Consulting")

	w := env.do(t, http.MethodPost, "/api/specialists", specialistBody("Tax Consulting", 500, svc.ID), owner)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeData[dto.SpecialistResponse](t, w)
	assert.Equal(t, "tax-consulting", created.Slug)
	assert.True(t, created.IsDraft)
	assert.Equal(t, "pending", created.VerificationStatus)
	assert.InDelta(t, 25.0, created.PlatformFee, 1e-9)
	assert.InDelta(t, 525.0, created.FinalPrice, 1e-9)
	require.NotNil(t, created.OwnerID)
	assert.Equal(t, ownerID, *created.OwnerID)
	require.Len(t, created.Services, 1)
	assert.Equal(t, svc.ID, created.Services[0].ID)

	w = env.do(t, http.MethodPost, "/api/specialists", specialistBody("Tax Consulting", 500), owner)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "tax-consulting-1", decodeData[dto.SpecialistResponse](t, w).Slug)

	path := "/api/specialists/" + created.ID.String()

	w = env.do(t, http.MethodPatch, path, gin.H{"title": "Hijacked"}, stranger)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPatch, path, gin.H{"verification_status": "verified"}, owner)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPatch, path, gin.H{"base_price": 2000}, owner)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	repriced := decodeData[dto.SpecialistResponse](t, w)
	assert.InDelta(t, 60.0, repriced.PlatformFee, 1e-9)
	assert.InDelta(t, 2060.0, repriced.FinalPrice, 1e-9)
	assert.Len(t, repriced.Services, 1)

	w = env.do(t, http.MethodPatch, path, gin.H{"verification_status": "verified"}, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, decodeData[dto.SpecialistResponse](t, w).IsVerified)

	w = env.do(t, http.MethodPost, path+"/publish", nil, owner)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.False(t, decodeData[dto.SpecialistResponse](t, w).IsDraft)

	w = env.do(t, http.MethodPost, path+"/publish", nil, owner)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ALREADY_PUBLISHED", decode(t, w).Code)

	w = env.do(t, http.MethodGet, "/api/specialists?is_draft=false", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	published := decode(t, w)
	assert.Equal(t, int64(1), published.Meta.TotalItems)

	w = env.do(t, http.MethodDelete, path, nil, owner)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, path, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SPECIALIST_NOT_FOUND", decode(t, w).Code)
}

func TestSpecialists_AssignServices(t *testing.T) {
	env := newAPI(t, envOptions{})
	env.seedTiers(t)
	_, admin := env.tokenFor(t, role.Admin)
	_, owner := env.tokenFor(t, role.Specialist)

	first := env.createServiceMaster(t, admin, "Audit")
	second := env.createServiceMaster(t, admin, "Bookkeeping")

	w := env.do(t, http.MethodPost, "/api/specialists", specialistBody("Accountant", 800, first.ID), owner)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	path := "/api/specialists/" + decodeData[dto.SpecialistResponse](t, w).ID.String() + "/services"

	w = env.do(t, http.MethodPut, path, gin.H{"service_ids": []uuid.UUID{second.ID, second.ID}}, owner)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	services := decodeData[dto.SpecialistResponse](t, w).Services
	require.Len(t, services, 1)
	assert.Equal(t, second.ID, services[0].ID)

	w = env.do(t, http.MethodPut, path, gin.H{"service_ids": []uuid.UUID{uuid.New()}}, owner)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_SERVICE_IDS", decode(t, w).Code)

	w = env.do(t, http.MethodPut, path, gin.H{"service_ids": []uuid.UUID{}}, owner)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Empty(t, decodeData[dto.SpecialistResponse](t, w).Services)
}

func TestSpecialists_PublishRequiresService(t *testing.T) {
	env := newAPI(t, envOptions{})
	env.seedTiers(t)
	_, owner := env.tokenFor(t, role.Specialist)

	w := env.do(t, http.MethodPost, "/api/specialists", specialistBody("Lonely", 300), owner)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeData[dto.SpecialistResponse](t, w).ID

	w = env.do(t, http.MethodPost, "/api/specialists/"+id.String()+"/publish", nil, owner)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, w).Code)
}

func TestSpecialists_CreateRejections(t *testing.T) {
	env := newAPI(t, envOptions{})
	_, owner := env.tokenFor(t, role.Specialist)
	_, client := env.tokenFor(t, role.Client)

	w := env.do(t, http.MethodPost, "/api/specialists", specialistBody("No Tiers Yet", 500), owner)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "FEE_TIERS_NOT_CONFIGURED", decode(t, w).Code)

	env.seedTiers(t)

	w = env.do(t, http.MethodPost, "/api/specialists", specialistBody("Client Listing", 500), client)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPost, "/api/specialists", specialistBody("X", 500), owner)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "title", decode(t, w).Errors[0].Field)

	w = env.do(t, http.MethodPost, "/api/specialists", gin.H{"title": "Missing Price"}, owner)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = env.do(t, http.MethodPost, "/api/specialists", specialistBody("Huge Price", 1e17), owner)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "base_price", decode(t, w).Errors[0].Field)
}

func TestSpecialists_SortDirection(t *testing.T) {
	env := newAPI(t, envOptions{})
	env.seedTiers(t)
	_, owner := env.tokenFor(t, role.Specialist)

	for _, s := range []struct {
		title string
		price float64
	}{{"Bravo Design", 900}, {"Alpha Design", 300}} {
		w := env.do(t, http.MethodPost, "/api/specialists", specialistBody(s.title, s.price), owner)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"price ascending", "sort_by=price&sort_order=asc", []string{"Alpha Design", "Bravo Design"}},
		{"price descending", "sort_by=price&sort_order=desc", []string{"Bravo Design", "Alpha Design"}},
		{"direction defaults to desc", "sort_by=price", []string{"Bravo Design", "Alpha Design"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodGet, "/api/specialists?"+tt.query, nil, "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			items := decodeData[[]dto.SpecialistResponse](t, w)
			titles := make([]string, 0, len(items))
			for _, item := range items {
				titles = append(titles, item.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestSpecialists_RejectsUnknownSortValues(t *testing.T) {
	env := newAPI(t, envOptions{})

	for _, query := range []string{"sort_order=ASC", "sort_order=up", "sort_by=popularity"} {
		w := env.do(t, http.MethodGet, "/api/specialists?"+query, nil, "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, query)
	}
}

func TestSpecialists_ListFiltersAndSort(t *testing.T) {
	env := newAPI(t, envOptions{})
	env.seedTiers(t)
	_, owner := env.tokenFor(t, role.Specialist)

	for _, s := range []struct {
		title string
		price float64
	}{{"Bravo Design", 900}, {"Alpha Design", 300}, {"Charlie Writing", 2000}} {
		w := env.do(t, http.MethodPost, "/api/specialists", specialistBody(s.title, s.price), owner)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := env.do(t, http.MethodGet, "/api/specialists?search=design&sort_by=price&sort_order=asc", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	items := decodeData[[]dto.SpecialistResponse](t, w)
	require.Len(t, items, 2)
	assert.Equal(t, "Alpha Design", items[0].Title)
	assert.Equal(t, "Bravo Design", items[1].Title)

	w = env.do(t, http.MethodGet, "/api/specialists?sort_by=alphabetical&sort_order=desc&limit=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, int64(3), body.Meta.TotalItems)
	assert.Equal(t, 2, body.Meta.TotalPages)
	assert.True(t, body.Meta.HasNextPage)
	items = decodeData[[]dto.SpecialistResponse](t, w)
	require.Len(t, items, 2)
	assert.Equal(t, "Charlie Writing", items[0].Title)

	w = env.do(t, http.MethodGet, "/api/specialists?min_price=1000", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	items = decodeData[[]dto.SpecialistResponse](t, w)
	require.Len(t, items, 1)
	assert.Equal(t, "Charlie Writing", items[0].Title)

	w = env.do(t, http.MethodGet, "/api/specialists?verification_status=unknown", nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = env.do(t, http.MethodGet, "/api/specialists?min_price=cheap", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
