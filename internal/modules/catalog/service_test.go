package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tallerlima/internal/database"
	"tallerlima/internal/domain"
	"tallerlima/internal/repository"
)

func setupWorkshopService(t *testing.T) (*Service[domain.Workshop, *domain.Workshop], *gorm.DB) {
	t.Helper()
	db, err := database.Connect(fmt.Sprintf("file:catsvc_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Workshop{},
		&domain.EngineRectifier{},
		&domain.Address{},
		&domain.Contact{},
	))

	repo := repository.NewCatalogRepository[domain.Workshop, *domain.Workshop](db, repository.CatalogConfig{
		Table:    "workshops",
		OwnerKey: "workshop_id",
	})
	return NewService(repo, Workshops()), db
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestServiceCreate_WithSubRecords(t *testing.T) {
	svc, _ := setupWorkshopService(t)
	ctx := context.Background()

	w, err := svc.Create(ctx, EntryRequest{
		Name:     strPtr("Taller El Sol"),
		Type:     strPtr("MECANICO"),
		Services: []string{"frenos", "suspension"},
		Address:  &AddressPayload{District: "Miraflores"},
		Contact:  &ContactPayload{Phone: strPtr("555-0101")},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, w.ID)
	assert.Equal(t, domain.WorkshopMecanico, w.Type)
	assert.Equal(t, []string{"frenos", "suspension"}, w.Services)

	require.NotNil(t, w.Address)
	assert.Equal(t, "Miraflores", w.Address.District)
	assert.Equal(t, "Lima", w.Address.Province)
	assert.Equal(t, "Perú", w.Address.Country)

	require.NotNil(t, w.Contact)
	require.NotNil(t, w.Contact.Phone)
	assert.Equal(t, "555-0101", *w.Contact.Phone)
}

func TestServiceCreate_WithoutSubRecords(t *testing.T) {
	svc, _ := setupWorkshopService(t)

	w, err := svc.Create(context.Background(), EntryRequest{
		Name: strPtr("Taller Sin Datos"),
		Type: strPtr("OTRO"),
	})
	require.NoError(t, err)
	assert.Nil(t, w.Address)
	assert.Nil(t, w.Contact)
	assert.NotNil(t, w.Services)
	assert.Empty(t, w.Services)
}

func TestServiceCreate_Validation(t *testing.T) {
	svc, _ := setupWorkshopService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, EntryRequest{Type: strPtr("MECANICO")})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(ctx, EntryRequest{Name: strPtr("X"), Type: strPtr("PELUQUERIA")})
	assert.ErrorIs(t, err, ErrTypeInvalid)

	_, err = svc.Create(ctx, EntryRequest{
		Name:    strPtr("X"),
		Type:    strPtr("MECANICO"),
		Address: &AddressPayload{Street: strPtr("Av. Arequipa 100")},
	})
	assert.ErrorIs(t, err, ErrDistrictRequired)
}

func TestServiceUpdate_CreatesAddressOnce(t *testing.T) {
	svc, db := setupWorkshopService(t)
	ctx := context.Background()

	w, err := svc.Create(ctx, EntryRequest{Name: strPtr("Taller Lince"), Type: strPtr("MECANICO")})
	require.NoError(t, err)
	require.Nil(t, w.Address)

	// First patch creates the row, the second updates it in place.
	for i := 0; i < 2; i++ {
		w, err = svc.Update(ctx, w.ID, EntryRequest{Address: &AddressPayload{District: "Lince"}})
		require.NoError(t, err)
	}

	require.NotNil(t, w.Address)
	assert.Equal(t, "Lince", w.Address.District)

	var count int64
	db.Model(&domain.Address{}).Where("workshop_id = ?", w.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestServiceUpdate_OmittedFragmentUntouched(t *testing.T) {
	svc, _ := setupWorkshopService(t)
	ctx := context.Background()

	w, err := svc.Create(ctx, EntryRequest{
		Name:     strPtr("Taller Persistente"),
		Type:     strPtr("ELECTRICO"),
		Services: []string{"alternadores"},
		Address:  &AddressPayload{District: "Barranco"},
	})
	require.NoError(t, err)

	w, err = svc.Update(ctx, w.ID, EntryRequest{Checked: boolPtr(true)})
	require.NoError(t, err)

	assert.True(t, w.Checked)
	assert.Equal(t, []string{"alternadores"}, w.Services)
	require.NotNil(t, w.Address)
	assert.Equal(t, "Barranco", w.Address.District)
}

func TestServiceUpdate_AddressFullReplace(t *testing.T) {
	svc, _ := setupWorkshopService(t)
	ctx := context.Background()

	lat := -12.12
	w, err := svc.Create(ctx, EntryRequest{
		Name: strPtr("Taller Mudanza"),
		Type: strPtr("MECANICO"),
		Address: &AddressPayload{
			Street:   strPtr("Av. Brasil 500"),
			District: "Jesús María",
			Latitude: &lat,
		},
	})
	require.NoError(t, err)

	// A fragment without street or latitude clears both.
	w, err = svc.Update(ctx, w.ID, EntryRequest{Address: &AddressPayload{District: "Pueblo Libre"}})
	require.NoError(t, err)

	require.NotNil(t, w.Address)
	assert.Equal(t, "Pueblo Libre", w.Address.District)
	assert.Nil(t, w.Address.Street)
	assert.Nil(t, w.Address.Latitude)
	assert.Equal(t, "Lima", w.Address.Province)
}

func TestServiceUpdate_NotFound(t *testing.T) {
	svc, _ := setupWorkshopService(t)

	_, err := svc.Update(context.Background(), "missing", EntryRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceDelete(t *testing.T) {
	svc, _ := setupWorkshopService(t)
	ctx := context.Background()

	w, err := svc.Create(ctx, EntryRequest{Name: strPtr("Taller Efímero"), Type: strPtr("OTRO")})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, w.ID))
	_, err = svc.Get(ctx, w.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, w.ID), ErrNotFound)
}
