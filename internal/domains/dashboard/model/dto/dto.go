package dto

type DashboardStatsResponse struct {
	TotalGuests        int     `json:"total_guests"`
	TotalRooms         int     `json:"total_rooms"`
	AvailableRooms     int     `json:"available_rooms"`
	OccupiedRooms      int     `json:"occupied_rooms"`
	ActiveReservations int     `json:"active_reservations"`
	TodayCheckIns      int     `json:"today_check_ins"`
	TodayCheckOuts     int     `json:"today_check_outs"`
	MonthlyRevenue     float64 `json:"monthly_revenue"`
}
