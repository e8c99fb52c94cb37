package catalog

import (
	"strings"
	"time"

	"nextstop/models"
)

// SearchAvailability finds buses serving a source/destination pair on a date.
// The route match is a case-insensitive exact match; busType is an optional
// filter. Buses without an inventory record for the date are returned with a
// zero-availability default rather than omitted.
func (s *DefaultCatalogService) SearchAvailability(source, destination, busType, journeyDate string) ([]SearchResult, error) {
	source = strings.TrimSpace(source)
	destination = strings.TrimSpace(destination)
	busType = strings.TrimSpace(busType)

	if source == "" || destination == "" || journeyDate == "" {
		return nil, newInvalidRequest("Please provide source, destination, and journey date")
	}
	date, err := time.Parse("2006-01-02", journeyDate)
	if err != nil {
		return nil, newInvalidRequest("Invalid journeyDate, expected YYYY-MM-DD")
	}
	day := date.Format("2006-01-02")

	route, err := s.RouteRepo.GetBySourceDestination(source, destination)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, newNotFound("Route for this source and destination")
	}

	buses, err := s.BusRepo.GetByRoute(route.RouteID, busType)
	if err != nil {
		return nil, err
	}
	if len(buses) == 0 {
		return nil, newNotFound("Buses for this route")
	}

	numbers := make([]string, 0, len(buses))
	for _, b := range buses {
		numbers = append(numbers, b.BusNumber)
	}
	inventories, err := s.SeatRepo.GetForBusesOnDate(numbers, day)
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(buses))
	for _, b := range buses {
		inv, ok := inventories[b.BusKey]
		if !ok {
			inv = models.EmptyInventory(b.BusNumber, day)
		}
		results = append(results, SearchResult{Bus: b, Route: *route, SeatInfo: inv})
	}
	return results, nil
}
