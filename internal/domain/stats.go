package domain

// DashboardStats are the counters shown on the staff dashboard.
type DashboardStats struct {
	ActiveRentals    int `json:"active_rentals"`
	TotalInventory   int `json:"total_inventory"`
	TotalCustomers   int `json:"total_customers"`
	RentalsThisMonth int `json:"rentals_this_month"`
}

// MonthlyRevenue is the summed rental revenue for one calendar month.
type MonthlyRevenue struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
}

// TopCustomer ranks a customer by rental count and lifetime spend.
type TopCustomer struct {
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	RentalCount  int     `json:"rental_count"`
	TotalSpent   float64 `json:"total_spent"`
}
