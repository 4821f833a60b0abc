package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"backend/entity"
	"backend/repository"
)

func newReportService(t *testing.T) (*ReportService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	svc := NewReportService(
		repository.NewBillRepository(db),
		repository.NewExpenseRepository(db),
		repository.NewStaffRepository(db),
	)
	return svc, db
}

func seedBill(t *testing.T, db *gorm.DB, total string, items ...entity.BillItem) {
	t.Helper()
	bill := &entity.Bill{
		Subtotal:      dec(total),
		Tax:           dec("0"),
		Discount:      dec("0"),
		Total:         dec(total),
		PaymentMethod: entity.PaymentCash,
		Items:         items,
	}
	mustCreate(t, db, bill)
}

func TestDateRange(t *testing.T) {
	// A Wednesday afternoon.
	now := time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		period string
		from   time.Time
	}{
		{"today", time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)},
		{"week", time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)},
		{"month", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		{"year", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"bogus", time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			from, to := DateRange(tt.period, now)
			if !from.Equal(tt.from) {
				t.Errorf("from = %v, want %v", from, tt.from)
			}
			if !to.Equal(now) {
				t.Errorf("to = %v, want now", to)
			}
		})
	}
}

func TestDateRangeWeekStartsMonday(t *testing.T) {
	// A Sunday still belongs to the week that started the previous Monday.
	sunday := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	from, _ := DateRange("week", sunday)
	want := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	if !from.Equal(want) {
		t.Errorf("from = %v, want %v", from, want)
	}
}

func TestDashboardEmptyRange(t *testing.T) {
	svc, _ := newReportService(t)

	stats, err := svc.Dashboard("today", time.Now())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if !stats.TotalRevenue.IsZero() || !stats.TotalExpenses.IsZero() || !stats.NetProfit.IsZero() {
		t.Errorf("empty range totals = %+v, want zeroes", stats)
	}
	if stats.TotalBills != 0 {
		t.Errorf("bills = %d, want 0", stats.TotalBills)
	}
	if !stats.AverageBill.IsZero() {
		t.Errorf("average with no bills = %s, want 0", stats.AverageBill)
	}
}

func TestDashboardTotals(t *testing.T) {
	svc, db := newReportService(t)
	seedBill(t, db, "100")
	seedBill(t, db, "50")
	mustCreate(t, db, &entity.Expense{
		Description: "gas refill",
		Amount:      dec("30"),
		Category:    "Utilities",
		Date:        time.Now().Format("2006-01-02"),
	})

	stats, err := svc.Dashboard("today", time.Now())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if !stats.TotalRevenue.Equal(dec("150")) {
		t.Errorf("revenue = %s, want 150", stats.TotalRevenue)
	}
	if !stats.TotalExpenses.Equal(dec("30")) {
		t.Errorf("expenses = %s, want 30", stats.TotalExpenses)
	}
	if !stats.NetProfit.Equal(dec("120")) {
		t.Errorf("net profit = %s, want 120", stats.NetProfit)
	}
	if stats.TotalBills != 2 {
		t.Errorf("bills = %d, want 2", stats.TotalBills)
	}
	if !stats.AverageBill.Equal(dec("75")) {
		t.Errorf("average = %s, want 75", stats.AverageBill)
	}
}

func TestSalesTopItemsTieBrokenByName(t *testing.T) {
	svc, db := newReportService(t)
	seedBill(t, db, "200",
		entity.BillItem{Name: "Masala Chai", Price: dec("50"), Quantity: 2, LineTotal: dec("100")},
		entity.BillItem{Name: "Butter Naan", Price: dec("100"), Quantity: 1, LineTotal: dec("100")},
	)

	report, err := svc.Sales("today", time.Now())
	if err != nil {
		t.Fatalf("sales: %v", err)
	}
	if len(report.TopItems) != 2 {
		t.Fatalf("top items = %d, want 2", len(report.TopItems))
	}
	if report.TopItems[0].Name != "Butter Naan" || report.TopItems[1].Name != "Masala Chai" {
		t.Errorf("equal revenue should order by name: %+v", report.TopItems)
	}
	if !report.TotalRevenue.Equal(dec("200")) {
		t.Errorf("revenue = %s, want 200", report.TotalRevenue)
	}
	if len(report.DailyTotals) != 1 || report.DailyTotals[0].Bills != 1 {
		t.Errorf("daily totals = %+v", report.DailyTotals)
	}
}

func TestProfitLossMarginZeroSafe(t *testing.T) {
	svc, db := newReportService(t)
	mustCreate(t, db, &entity.Expense{
		Description: "deep clean",
		Amount:      dec("500"),
		Category:    "Maintenance",
		Date:        time.Now().Format("2006-01-02"),
	})

	report, err := svc.ProfitLoss("today", time.Now())
	if err != nil {
		t.Fatalf("profit-loss: %v", err)
	}
	if !report.ProfitMargin.IsZero() {
		t.Errorf("margin with no revenue = %s, want 0", report.ProfitMargin)
	}
	if !report.NetProfit.Equal(dec("-500")) {
		t.Errorf("net profit = %s, want -500", report.NetProfit)
	}
}

func TestProfitLossMargin(t *testing.T) {
	svc, db := newReportService(t)
	seedBill(t, db, "400")
	mustCreate(t, db, &entity.Expense{
		Description: "produce",
		Amount:      dec("100"),
		Category:    "Ingredients",
		Date:        time.Now().Format("2006-01-02"),
	})

	report, err := svc.ProfitLoss("today", time.Now())
	if err != nil {
		t.Fatalf("profit-loss: %v", err)
	}
	if !report.ProfitMargin.Equal(dec("75")) {
		t.Errorf("margin = %s, want 75", report.ProfitMargin)
	}
}

func TestStaffReport(t *testing.T) {
	svc, db := newReportService(t)
	emp := &entity.Employee{Name: "Ravi", Position: "Cook", MonthlySalary: dec("15000"), IsActive: true}
	mustCreate(t, db, emp)
	mustCreate(t, db, &entity.SalaryRecord{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Amount:       dec("15000"),
		PayDate:      time.Now().Format("2006-01-02"),
	})

	report, err := svc.Staff("month", time.Now())
	if err != nil {
		t.Fatalf("staff report: %v", err)
	}
	if !report.TotalSalaryPaid.Equal(dec("15000")) {
		t.Errorf("total paid = %s, want 15000", report.TotalSalaryPaid)
	}
	if len(report.Employees) != 1 || report.Employees[0].Payments != 1 {
		t.Errorf("employees = %+v", report.Employees)
	}
}
