package availability

import "tavolo/pkg/model"

// MapSeatingAreas resolves external room ids to internally configured
// seating areas. Ids with no internal counterpart are dropped silently: the
// room exists on the platform but cannot be routed to, so it must never be
// offered to a guest. The payment and cancellation conditions, when given,
// are copied onto every returned area.
func MapSeatingAreas(roomIDs []int, known []model.SeatingArea, paymentPerGuest *float64, notCancellable bool) []model.SeatingAreaInfo {
	infos := make([]model.SeatingAreaInfo, 0, len(roomIDs))
	for _, id := range roomIDs {
		for _, area := range known {
			if area.ExternalRoomID == id {
				infos = append(infos, model.SeatingAreaInfo{
					SeatingArea:     area,
					PaymentPerGuest: paymentPerGuest,
					NotCancellable:  notCancellable,
				})
				break
			}
		}
	}
	return infos
}
