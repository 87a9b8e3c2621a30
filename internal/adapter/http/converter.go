package http

import (
	"time"

	"github.com/flight-search/flight-prices-checker/internal/domain"
	"github.com/flight-search/flight-prices-checker/internal/usecase"
)

// ToSelectionUpdate converts a validated request to a usecase.SelectionUpdate.
func ToSelectionUpdate(req *UpdateSelectionRequest) usecase.SelectionUpdate {
	return usecase.SelectionUpdate{
		SearchBy:      req.SearchBy,
		Departure:     req.Departure,
		Arrival:       req.Arrival,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		MinDays:       req.MinDays,
		MaxDays:       req.MaxDays,
		ResetDayRange: req.ResetDayRange,
	}
}

// ToFilterUpdate converts a validated request to a usecase.FilterUpdate.
func ToFilterUpdate(req *SetFiltersRequest) usecase.FilterUpdate {
	return usecase.FilterUpdate{
		PriceCeiling: req.PriceCeiling,
		MaxDuration:  req.MaxDuration,
	}
}

// ToAirportOptionsDTO converts selector entries to the response DTO.
func ToAirportOptionsDTO(mode domain.DisplayMode, options []domain.AirportOption) AirportOptionsResponseDTO {
	airports := make([]AirportOptionDTO, len(options))
	for i, o := range options {
		airports[i] = AirportOptionDTO{Code: o.Code, Label: o.Label}
	}
	return AirportOptionsResponseDTO{
		SearchBy: string(mode),
		Total:    len(airports),
		Airports: airports,
	}
}

// ToSelectionDTO converts the selection screen to its response DTO.
func ToSelectionDTO(view *usecase.SelectionView) SelectionDTO {
	warnings := view.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return SelectionDTO{
		SessionID:        view.SessionID,
		State:            string(view.State),
		SearchBy:         string(view.SearchBy),
		Departure:        toSelectedAirportDTO(view.Departure),
		Arrival:          toSelectedAirportDTO(view.Arrival),
		StartDate:        domain.FormatDate(view.StartDate),
		EndDate:          domain.FormatDate(view.EndDate),
		DayRangeBounds:   toDayRangeDTO(view.DayRangeBounds),
		DayRange:         toDayRangeDTO(view.DayRange),
		DayRangeExplicit: view.DayRangeExplicit,
		Warnings:         warnings,
		HasCachedResults: view.HasCachedResults,
	}
}

// ToResultsDTO converts the results screen to its response DTO.
func ToResultsDTO(view *usecase.ResultsView) ResultsDTO {
	rows := make([]PriceGraphRowDTO, len(view.Rows))
	for i, r := range view.Rows {
		rows[i] = PriceGraphRowDTO{
			Index:      r.Index,
			StartDate:  r.StartDate,
			ReturnDate: r.ReturnDate,
			Price:      r.Price,
		}
	}

	var fetchedAt string
	if !view.FetchedAt.IsZero() {
		fetchedAt = view.FetchedAt.UTC().Format(time.RFC3339)
	}

	return ResultsDTO{
		SessionID:    view.SessionID,
		State:        string(view.State),
		Criteria:     toCriteriaDTO(view.Criteria),
		Rows:         rows,
		ShownRows:    len(rows),
		TotalRows:    view.TotalRows,
		PriceBounds:  PriceBoundsDTO{Min: view.PriceBounds.Min, Max: view.PriceBounds.Max},
		PriceCeiling: view.PriceCeiling,
		MaxDuration:  view.MaxDuration,
		FirstDate:    view.FirstDate,
		LastDate:     view.LastDate,
		FetchedAt:    fetchedAt,
	}
}

// ToScreenDTO converts whichever screen the session is on.
func ToScreenDTO(view *usecase.ScreenView) ScreenDTO {
	dto := ScreenDTO{State: string(view.State)}
	if view.Selection != nil {
		selection := ToSelectionDTO(view.Selection)
		dto.Selection = &selection
	}
	if view.Results != nil {
		results := ToResultsDTO(view.Results)
		dto.Results = &results
	}
	return dto
}

func toSelectedAirportDTO(a *usecase.SelectedAirport) *SelectedAirportDTO {
	if a == nil {
		return nil
	}
	return &SelectedAirportDTO{Code: a.Airport.Code, Name: a.Airport.Name, Label: a.Label}
}

func toDayRangeDTO(r domain.DayRange) DayRangeDTO {
	return DayRangeDTO{MinDays: r.MinDays, MaxDays: r.MaxDays}
}

func toCriteriaDTO(c domain.SearchCriteria) CriteriaDTO {
	return CriteriaDTO{
		Departure: c.Departure.Code,
		Arrival:   c.Arrival.Code,
		StartDate: domain.FormatDate(c.StartDate),
		EndDate:   domain.FormatDate(c.EndDate),
		MinDays:   c.MinDays,
		MaxDays:   c.MaxDays,
	}
}
