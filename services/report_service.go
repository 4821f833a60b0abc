package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"backend/entity"
	"backend/pkg/errs"
	"backend/repository"
)

const dateLayout = "2006-01-02"

type ReportService struct {
	BillRepo    *repository.BillRepository
	ExpenseRepo *repository.ExpenseRepository
	StaffRepo   *repository.StaffRepository
}

func NewReportService(
	billRepo *repository.BillRepository,
	expenseRepo *repository.ExpenseRepository,
	staffRepo *repository.StaffRepository,
) *ReportService {
	return &ReportService{BillRepo: billRepo, ExpenseRepo: expenseRepo, StaffRepo: staffRepo}
}

// DateRange resolves a named period to a half-open [from, to) window
// anchored at now. Unknown periods fall back to today.
func DateRange(period string, now time.Time) (time.Time, time.Time) {
	startOfDay := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}

	switch period {
	case "week":
		// Weeks start on Monday.
		offset := (int(now.Weekday()) + 6) % 7
		return startOfDay(now.AddDate(0, 0, -offset)), now
	case "month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now
	case "year":
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), now
	default:
		return startOfDay(now), now
	}
}

// dateBounds converts the window to day-granular string bounds for the
// tables that store plain dates; the upper bound stays exclusive.
func dateBounds(from, to time.Time) (string, string) {
	return from.Format(dateLayout), to.AddDate(0, 0, 1).Format(dateLayout)
}

// ----- Dashboard -----

type DashboardStats struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	NetProfit      decimal.Decimal `json:"netProfit"`
	TotalBills     int             `json:"totalBills"`
	TotalEmployees int             `json:"totalEmployees"`
	AverageBill    decimal.Decimal `json:"averageBill"`
	Period         string          `json:"period"`
}

func (s *ReportService) Dashboard(period string, now time.Time) (*DashboardStats, error) {
	from, to := DateRange(period, now)

	bills, err := s.BillRepo.ListRange(from, to)
	if err != nil {
		return nil, errs.Persistence(err, "could not load bills")
	}
	dayFrom, dayTo := dateBounds(from, to)
	expenses, err := s.ExpenseRepo.FindAll(dayFrom, dayTo)
	if err != nil {
		return nil, errs.Persistence(err, "could not load expenses")
	}
	employees, err := s.StaffRepo.FindAllEmployees()
	if err != nil {
		return nil, errs.Persistence(err, "could not load employees")
	}

	revenue := decimal.Zero
	for _, b := range bills {
		revenue = revenue.Add(b.Total)
	}
	spent := decimal.Zero
	for _, e := range expenses {
		spent = spent.Add(e.Amount)
	}

	// No bills means an average of zero, not a division error.
	average := decimal.Zero
	if len(bills) > 0 {
		average = revenue.Div(decimal.NewFromInt(int64(len(bills)))).Round(2)
	}

	return &DashboardStats{
		TotalRevenue:   revenue.Round(2),
		TotalExpenses:  spent.Round(2),
		NetProfit:      revenue.Sub(spent).Round(2),
		TotalBills:     len(bills),
		TotalEmployees: len(employees),
		AverageBill:    average,
		Period:         normalizePeriod(period),
	}, nil
}

// ----- Sales -----

type DailySales struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Bills   int             `json:"bills"`
}

type ItemSales struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type SalesReport struct {
	DailyTotals  []DailySales    `json:"dailyTotals"`
	TopItems     []ItemSales     `json:"topItems"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalBills   int             `json:"totalBills"`
	Period       string          `json:"period"`
}

func (s *ReportService) Sales(period string, now time.Time) (*SalesReport, error) {
	from, to := DateRange(period, now)
	bills, err := s.BillRepo.ListRange(from, to)
	if err != nil {
		return nil, errs.Persistence(err, "could not load bills")
	}

	daily := map[string]*DailySales{}
	items := map[string]*ItemSales{}
	revenue := decimal.Zero
	for _, bill := range bills {
		revenue = revenue.Add(bill.Total)

		date := bill.CreatedAt.Format(dateLayout)
		d, ok := daily[date]
		if !ok {
			d = &DailySales{Date: date, Revenue: decimal.Zero}
			daily[date] = d
		}
		d.Revenue = d.Revenue.Add(bill.Total)
		d.Bills++

		for _, item := range bill.Items {
			it, ok := items[item.Name]
			if !ok {
				it = &ItemSales{Name: item.Name, Revenue: decimal.Zero}
				items[item.Name] = it
			}
			it.Quantity += item.Quantity
			it.Revenue = it.Revenue.Add(item.LineTotal)
		}
	}

	report := &SalesReport{
		DailyTotals:  make([]DailySales, 0, len(daily)),
		TopItems:     make([]ItemSales, 0, len(items)),
		TotalRevenue: revenue.Round(2),
		TotalBills:   len(bills),
		Period:       normalizePeriod(period),
	}
	for _, d := range daily {
		report.DailyTotals = append(report.DailyTotals, *d)
	}
	sort.Slice(report.DailyTotals, func(i, j int) bool {
		return report.DailyTotals[i].Date < report.DailyTotals[j].Date
	})

	for _, it := range items {
		report.TopItems = append(report.TopItems, *it)
	}
	// Revenue descending; name ascending keeps ties reproducible.
	sort.Slice(report.TopItems, func(i, j int) bool {
		if !report.TopItems[i].Revenue.Equal(report.TopItems[j].Revenue) {
			return report.TopItems[i].Revenue.GreaterThan(report.TopItems[j].Revenue)
		}
		return report.TopItems[i].Name < report.TopItems[j].Name
	})
	if len(report.TopItems) > 10 {
		report.TopItems = report.TopItems[:10]
	}
	return report, nil
}

// ----- Expenses -----

type DailyExpense struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

type ExpenseReport struct {
	ByCategory    []ExpenseCategoryTotal `json:"byCategory"`
	DailyTotals   []DailyExpense         `json:"dailyTotals"`
	TotalExpenses decimal.Decimal        `json:"totalExpenses"`
	Period        string                 `json:"period"`
}

func (s *ReportService) Expenses(period string, now time.Time) (*ExpenseReport, error) {
	from, to := DateRange(period, now)
	dayFrom, dayTo := dateBounds(from, to)
	expenses, err := s.ExpenseRepo.FindAll(dayFrom, dayTo)
	if err != nil {
		return nil, errs.Persistence(err, "could not load expenses")
	}

	byCat := map[string]*ExpenseCategoryTotal{}
	daily := map[string]*DailyExpense{}
	total := decimal.Zero
	for _, exp := range expenses {
		total = total.Add(exp.Amount)

		c, ok := byCat[exp.Category]
		if !ok {
			c = &ExpenseCategoryTotal{Category: exp.Category, Total: decimal.Zero}
			byCat[exp.Category] = c
		}
		c.Total = c.Total.Add(exp.Amount)
		c.Count++

		d, ok := daily[exp.Date]
		if !ok {
			d = &DailyExpense{Date: exp.Date, Total: decimal.Zero}
			daily[exp.Date] = d
		}
		d.Total = d.Total.Add(exp.Amount)
	}

	report := &ExpenseReport{
		ByCategory:    make([]ExpenseCategoryTotal, 0, len(byCat)),
		DailyTotals:   make([]DailyExpense, 0, len(daily)),
		TotalExpenses: total.Round(2),
		Period:        normalizePeriod(period),
	}
	for _, c := range byCat {
		report.ByCategory = append(report.ByCategory, *c)
	}
	sort.Slice(report.ByCategory, func(i, j int) bool {
		if !report.ByCategory[i].Total.Equal(report.ByCategory[j].Total) {
			return report.ByCategory[i].Total.GreaterThan(report.ByCategory[j].Total)
		}
		return report.ByCategory[i].Category < report.ByCategory[j].Category
	})
	for _, d := range daily {
		report.DailyTotals = append(report.DailyTotals, *d)
	}
	sort.Slice(report.DailyTotals, func(i, j int) bool {
		return report.DailyTotals[i].Date < report.DailyTotals[j].Date
	})
	return report, nil
}

// ----- Profit & loss -----

type ProfitLoss struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
	ProfitMargin  decimal.Decimal `json:"profitMargin"`
	Period        string          `json:"period"`
}

func (s *ReportService) ProfitLoss(period string, now time.Time) (*ProfitLoss, error) {
	from, to := DateRange(period, now)
	bills, err := s.BillRepo.ListRange(from, to)
	if err != nil {
		return nil, errs.Persistence(err, "could not load bills")
	}
	dayFrom, dayTo := dateBounds(from, to)
	expenses, err := s.ExpenseRepo.FindAll(dayFrom, dayTo)
	if err != nil {
		return nil, errs.Persistence(err, "could not load expenses")
	}

	revenue := decimal.Zero
	for _, b := range bills {
		revenue = revenue.Add(b.Total)
	}
	spent := decimal.Zero
	for _, e := range expenses {
		spent = spent.Add(e.Amount)
	}

	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = revenue.Sub(spent).
			Div(revenue).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	return &ProfitLoss{
		TotalRevenue:  revenue.Round(2),
		TotalExpenses: spent.Round(2),
		NetProfit:     revenue.Sub(spent).Round(2),
		ProfitMargin:  margin,
		Period:        normalizePeriod(period),
	}, nil
}

// ----- Staff -----

type EmployeePayroll struct {
	Employee  entity.Employee `json:"employee"`
	TotalPaid decimal.Decimal `json:"totalPaid"`
	Payments  int             `json:"payments"`
}

type StaffReport struct {
	Employees       []EmployeePayroll `json:"employees"`
	TotalSalaryPaid decimal.Decimal   `json:"totalSalaryPaid"`
	Period          string            `json:"period"`
}

func (s *ReportService) Staff(period string, now time.Time) (*StaffReport, error) {
	from, to := DateRange(period, now)
	dayFrom, dayTo := dateBounds(from, to)

	employees, err := s.StaffRepo.FindAllEmployees()
	if err != nil {
		return nil, errs.Persistence(err, "could not load employees")
	}
	records, err := s.StaffRepo.AllSalaryRecords(dayFrom, dayTo)
	if err != nil {
		return nil, errs.Persistence(err, "could not load salary records")
	}

	paid := map[uint]*EmployeePayroll{}
	total := decimal.Zero
	for _, rec := range records {
		p, ok := paid[rec.EmployeeID]
		if !ok {
			p = &EmployeePayroll{TotalPaid: decimal.Zero}
			paid[rec.EmployeeID] = p
		}
		p.TotalPaid = p.TotalPaid.Add(rec.Amount)
		p.Payments++
		total = total.Add(rec.Amount)
	}

	report := &StaffReport{
		Employees:       make([]EmployeePayroll, 0, len(employees)),
		TotalSalaryPaid: total.Round(2),
		Period:          normalizePeriod(period),
	}
	for _, e := range employees {
		row := EmployeePayroll{Employee: e, TotalPaid: decimal.Zero}
		if p, ok := paid[e.ID]; ok {
			row.TotalPaid = p.TotalPaid
			row.Payments = p.Payments
		}
		report.Employees = append(report.Employees, row)
	}
	return report, nil
}

func normalizePeriod(period string) string {
	switch period {
	case "week", "month", "year":
		return period
	default:
		return "today"
	}
}
