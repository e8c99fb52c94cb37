package booking

import (
	"context"
	"errors"
	"sync"

	"nextstop/models"
)

// fakeBusRepo is an in-memory bus catalog keyed by normalized bus number.
type fakeBusRepo struct {
	buses map[string]*models.Bus
}

func newFakeBusRepo(buses ...*models.Bus) *fakeBusRepo {
	r := &fakeBusRepo{buses: make(map[string]*models.Bus)}
	for _, b := range buses {
		b.Normalize()
		r.buses[b.BusKey] = b
	}
	return r
}

func (r *fakeBusRepo) Create(bus *models.Bus) error {
	bus.Normalize()
	r.buses[bus.BusKey] = bus
	return nil
}

func (r *fakeBusRepo) GetAll() ([]models.Bus, error) {
	var out []models.Bus
	for _, b := range r.buses {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBusRepo) GetByNumber(busNumber string) (*models.Bus, error) {
	b, ok := r.buses[models.NormalizeKey(busNumber)]
	if !ok {
		return nil, nil
	}
	return b, nil
}

func (r *fakeBusRepo) GetByRoute(routeID, busType string) ([]models.Bus, error) {
	var out []models.Bus
	for _, b := range r.buses {
		if b.RouteKey == models.NormalizeKey(routeID) && (busType == "" || b.Type == busType) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBusRepo) Update(bus *models.Bus) error {
	bus.Normalize()
	r.buses[bus.BusKey] = bus
	return nil
}

func (r *fakeBusRepo) Delete(busNumber string) error {
	delete(r.buses, models.NormalizeKey(busNumber))
	return nil
}

// fakeRouteRepo is an in-memory route catalog keyed by normalized route id.
type fakeRouteRepo struct {
	routes map[string]*models.Route
}

func newFakeRouteRepo(routes ...*models.Route) *fakeRouteRepo {
	r := &fakeRouteRepo{routes: make(map[string]*models.Route)}
	for _, rt := range routes {
		rt.Normalize()
		r.routes[rt.RouteKey] = rt
	}
	return r
}

func (r *fakeRouteRepo) Create(route *models.Route) error {
	route.Normalize()
	r.routes[route.RouteKey] = route
	return nil
}

func (r *fakeRouteRepo) GetAll() ([]models.Route, error) {
	var out []models.Route
	for _, rt := range r.routes {
		out = append(out, *rt)
	}
	return out, nil
}

func (r *fakeRouteRepo) GetByID(routeID string) (*models.Route, error) {
	rt, ok := r.routes[models.NormalizeKey(routeID)]
	if !ok {
		return nil, nil
	}
	return rt, nil
}

func (r *fakeRouteRepo) GetBySourceDestination(source, destination string) (*models.Route, error) {
	for _, rt := range r.routes {
		if rt.SourceKey == models.NormalizeKey(source) && rt.DestinationKey == models.NormalizeKey(destination) {
			return rt, nil
		}
	}
	return nil, nil
}

func (r *fakeRouteRepo) Update(route *models.Route) error {
	route.Normalize()
	r.routes[route.RouteKey] = route
	return nil
}

func (r *fakeRouteRepo) Delete(routeID string) error {
	delete(r.routes, models.NormalizeKey(routeID))
	return nil
}

// fakeSeatRepo mirrors the store's conditional-update semantics: Reserve
// succeeds only when every label is free, under a single lock.
type fakeSeatRepo struct {
	mu   sync.Mutex
	invs map[string]*models.SeatInventory
}

func seatKey(busNumber, date string) string {
	return models.NormalizeKey(busNumber) + "|" + date
}

func newFakeSeatRepo(invs ...*models.SeatInventory) *fakeSeatRepo {
	r := &fakeSeatRepo{invs: make(map[string]*models.SeatInventory)}
	for _, inv := range invs {
		inv.Normalize()
		r.invs[seatKey(inv.BusNumber, inv.Date)] = inv
	}
	return r
}

func (r *fakeSeatRepo) GetByBusAndDate(busNumber, date string) (*models.SeatInventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invs[seatKey(busNumber, date)]
	if !ok {
		return nil, nil
	}
	cp := *inv
	cp.Seats = append([]string(nil), inv.Seats...)
	return &cp, nil
}

func (r *fakeSeatRepo) GetForBusesOnDate(busNumbers []string, date string) (map[string]models.SeatInventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]models.SeatInventory)
	for _, bn := range busNumbers {
		if inv, ok := r.invs[seatKey(bn, date)]; ok {
			out[models.NormalizeKey(bn)] = *inv
		}
	}
	return out, nil
}

func (r *fakeSeatRepo) Upsert(inv *models.SeatInventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv.Normalize()
	r.invs[seatKey(inv.BusNumber, inv.Date)] = inv
	return nil
}

func (r *fakeSeatRepo) Reserve(ctx context.Context, busNumber, date string, labels []string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invs[seatKey(busNumber, date)]
	if !ok {
		return false, nil
	}
	free := make(map[string]struct{}, len(inv.Seats))
	for _, s := range inv.Seats {
		free[s] = struct{}{}
	}
	for _, l := range labels {
		if _, ok := free[l]; !ok {
			return false, nil
		}
	}
	var kept []string
	drop := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		drop[l] = struct{}{}
	}
	for _, s := range inv.Seats {
		if _, gone := drop[s]; !gone {
			kept = append(kept, s)
		}
	}
	inv.Seats = kept
	inv.AvailableSeats -= len(labels)
	return true, nil
}

func (r *fakeSeatRepo) Release(ctx context.Context, busNumber, date string, labels []string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invs[seatKey(busNumber, date)]
	if !ok {
		return false, nil
	}
	inv.Seats = append(inv.Seats, labels...)
	inv.AvailableSeats += len(labels)
	return true, nil
}

// fakeBookingRepo is the in-memory ledger. failCreate forces insert failures
// to exercise the compensation path.
type fakeBookingRepo struct {
	mu         sync.Mutex
	bookings   []*models.Booking
	failCreate bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{}
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return errors.New("insert failed")
	}
	r.bookings = append(r.bookings, booking)
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) GetByUsername(username string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Username == username {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) MarkCancelled(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id && b.BookingStatus != models.BookingStatusCancelled {
			b.BookingStatus = models.BookingStatusCancelled
			return true, nil
		}
	}
	return false, nil
}
