package feedback

import (
	"testing"

	"nextstop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memBusRepo struct {
	buses map[string]*models.Bus
}

func (r *memBusRepo) Create(bus *models.Bus) error {
	bus.Normalize()
	r.buses[bus.BusKey] = bus
	return nil
}

func (r *memBusRepo) GetAll() ([]models.Bus, error) { return nil, nil }

func (r *memBusRepo) GetByNumber(busNumber string) (*models.Bus, error) {
	b, ok := r.buses[models.NormalizeKey(busNumber)]
	if !ok {
		return nil, nil
	}
	return b, nil
}

func (r *memBusRepo) GetByRoute(routeID, busType string) ([]models.Bus, error) { return nil, nil }
func (r *memBusRepo) Update(bus *models.Bus) error                             { return nil }
func (r *memBusRepo) Delete(busNumber string) error                            { return nil }

type memFeedbackRepo struct {
	items []models.Feedback
}

func (r *memFeedbackRepo) Create(fb *models.Feedback) error {
	r.items = append(r.items, *fb)
	return nil
}

func (r *memFeedbackRepo) GetAll() ([]models.Feedback, error) {
	// Newest first, matching the store's sort.
	out := make([]models.Feedback, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		out = append(out, r.items[i])
	}
	return out, nil
}

func newFeedbackService() *DefaultFeedbackService {
	busRepo := &memBusRepo{buses: make(map[string]*models.Bus)}
	_ = busRepo.Create(&models.Bus{BusNumber: "B1", BusName: "Day Liner", Type: models.BusTypeAC, RouteID: "R1"})
	return &DefaultFeedbackService{Repo: &memFeedbackRepo{}, BusRepo: busRepo}
}

func TestAddFeedback(t *testing.T) {
	svc := newFeedbackService()
	principal := models.Principal{Username: "alice", Role: models.RoleUser}

	fb, err := svc.Add(principal, "b1", 4, "Comfortable ride")
	require.NoError(t, err)
	assert.Equal(t, "alice", fb.Username)
	assert.Equal(t, "B1", fb.BusNumber)
	assert.Equal(t, 4, fb.Rating)
	assert.NotEmpty(t, fb.ID)
}

func TestAddFeedbackValidation(t *testing.T) {
	svc := newFeedbackService()
	principal := models.Principal{Username: "alice", Role: models.RoleUser}

	_, err := svc.Add(principal, "B1", 0, "")
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeInvalidRequest, svcErr.Code)

	_, err = svc.Add(principal, "B1", 6, "")
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeInvalidRequest, svcErr.Code)

	_, err = svc.Add(principal, "B9", 3, "")
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeNotFound, svcErr.Code)
}

func TestGetAllNewestFirst(t *testing.T) {
	svc := newFeedbackService()
	principal := models.Principal{Username: "alice", Role: models.RoleUser}

	_, err := svc.Add(principal, "B1", 3, "first")
	require.NoError(t, err)
	_, err = svc.Add(principal, "B1", 5, "second")
	require.NoError(t, err)

	all, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].Comment)
}
