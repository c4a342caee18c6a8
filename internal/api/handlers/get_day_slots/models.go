package get_day_slots

import (
	getDaySlots "github.com/houseofbeauty/appointment-service/internal/usecase/get_day_slots"
)

// SlotItem один слот ленты
type SlotItem struct {
	Time        string `json:"time"`
	Unavailable bool   `json:"unavailable"`
}

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date      string     `json:"date"`
	Offerable bool       `json:"offerable"`
	StartHour int        `json:"startHour"`
	EndHour   int        `json:"endHour"`
	Slots     []SlotItem `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	out := &DaySlotsResponse{
		Date:      resp.Date.String(),
		Offerable: resp.Offerable,
		StartHour: resp.StartHour,
		EndHour:   resp.EndHour,
		Slots:     make([]SlotItem, 0, len(resp.Slots)),
	}
	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, SlotItem{Time: slot.Time.String(), Unavailable: slot.Unavailable})
	}
	return out
}
