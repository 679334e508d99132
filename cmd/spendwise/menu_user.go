package main

import (
	"bufio"
	"fmt"
	"strconv"
	"time"

	"spendwise/pkg/app"
	"spendwise/pkg/ledger"
	"spendwise/pkg/models"
	"spendwise/pkg/report"
)

func userMenu(a *app.App, sc *bufio.Scanner) {
	for {
		l, err := a.Ledger()
		if err != nil {
			return
		}
		clearScreen()
		fmt.Println(formatTitle("Expense Tracker Menu"))
		fmt.Println("1. Add Expense")
		fmt.Println("2. Edit Expense")
		fmt.Println("3. Delete Expense")
		fmt.Println("4. View Expenses")
		fmt.Println("5. Set Budget")
		fmt.Println("6. View Budgets")
		fmt.Println("7. Delete Budget")
		fmt.Println("8. Spending Summary")
		fmt.Println("9. Financial Insights")
		fmt.Println("10. User Statistics")
		fmt.Println("11. Clear All Data")
		fmt.Println("12. Logout")

		switch prompt(sc, "\nChoose option (1-12): ") {
		case "1":
			addExpense(l, sc)
		case "2":
			editExpense(l, sc)
		case "3":
			deleteExpense(l, sc)
		case "4":
			viewExpenses(l, sc)
		case "5":
			setBudget(l, sc)
		case "6":
			viewBudgets(l, sc)
		case "7":
			deleteBudget(l, sc)
		case "8":
			showSummary(l, sc)
		case "9":
			showInsights(l, sc)
		case "10":
			showStatistics(a, sc)
		case "11":
			clearAll(l, sc)
		case "12":
			a.Logout()
			fmt.Println(formatSuccess("Logged out successfully"))
			return
		default:
			fmt.Println(formatError("Invalid choice. Please try again."))
			pause(sc)
		}
	}
}

func addExpense(l *ledger.Ledger, sc *bufio.Scanner) {
	amount, ok := promptFloat(sc, "Enter amount: ")
	if !ok {
		pause(sc)
		return
	}
	category := promptCategory(sc)
	description := prompt(sc, "Enter description: ")
	date := prompt(sc, "Enter date (YYYY-MM-DD, blank for today): ")
	if date != "" {
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			fmt.Println(warningStyle.Render("Invalid date format. Using today."))
			date = ""
		}
	}

	id, err := l.Add(amount, category, description, date)
	if err != nil {
		fmt.Println(formatError(err.Error()))
	} else {
		fmt.Println(formatSuccess("Expense added successfully (ID: " + id + ")"))
	}
	pause(sc)
}

func editExpense(l *ledger.Ledger, sc *bufio.Scanner) {
	expenses := l.All(ledger.SortByDate, true)
	if len(expenses) == 0 {
		fmt.Println("No expenses to edit.")
		pause(sc)
		return
	}
	printNumberedExpenses(expenses)

	id, ok := selectExpense(sc, expenses, "edit")
	if !ok {
		pause(sc)
		return
	}
	current, found := l.Get(id)
	if !found {
		fmt.Println(formatError("Expense not found."))
		pause(sc)
		return
	}

	fmt.Println(subtleStyle.Render("Leave input blank to keep current value."))
	var patch models.ExpensePatch

	if v := prompt(sc, fmt.Sprintf("Amount [%.2f]: ", current.Amount)); v != "" {
		if amount, err := strconv.ParseFloat(v, 64); err != nil {
			fmt.Println(warningStyle.Render("Invalid amount entered. Skipping amount update."))
		} else {
			patch.Amount = &amount
		}
	}
	if v := prompt(sc, fmt.Sprintf("Category [%s]: ", current.Category)); v != "" {
		if cat, err := models.ParseCategory(v); err != nil {
			fmt.Println(warningStyle.Render("Invalid category entered. Skipping category update."))
		} else {
			patch.Category = &cat
		}
	}
	if v := prompt(sc, fmt.Sprintf("Description [%s]: ", current.Description)); v != "" {
		patch.Description = &v
	}
	if v := prompt(sc, fmt.Sprintf("Date (YYYY-MM-DD) [%s]: ", current.Date)); v != "" {
		if _, err := time.Parse(models.DateLayout, v); err != nil {
			fmt.Println(warningStyle.Render("Invalid date format. Skipping date update."))
		} else {
			patch.Date = &v
		}
	}

	if err := l.Update(id, patch); err != nil {
		fmt.Println(formatError(err.Error()))
	} else {
		fmt.Println(formatSuccess("Expense updated successfully"))
	}
	pause(sc)
}

func deleteExpense(l *ledger.Ledger, sc *bufio.Scanner) {
	expenses := l.All(ledger.SortByDate, true)
	if len(expenses) == 0 {
		fmt.Println("No expenses to delete.")
		pause(sc)
		return
	}
	printNumberedExpenses(expenses)

	id, ok := selectExpense(sc, expenses, "delete")
	if !ok {
		pause(sc)
		return
	}
	if confirm := prompt(sc, fmt.Sprintf("Are you sure you want to delete expense %s? (y/N): ", id)); confirm != "y" && confirm != "Y" {
		fmt.Println("Deletion cancelled.")
		pause(sc)
		return
	}

	if err := l.Remove(id); err != nil {
		fmt.Println(formatError(err.Error()))
	} else {
		fmt.Println(formatSuccess("Expense deleted successfully"))
	}
	pause(sc)
}

func viewExpenses(l *ledger.Ledger, sc *bufio.Scanner) {
	fmt.Println("\nSort by: (1) Date (2) Amount (3) Category")
	sortKey := ledger.SortByDate
	switch promptDefault(sc, "Choose sort option (1-3) [1]: ", "1") {
	case "2":
		sortKey = ledger.SortByAmount
	case "3":
		sortKey = ledger.SortByCategory
	}

	fmt.Println("\nView: (1) Current month (2) All (3) Date range")
	view := promptDefault(sc, "Choose view option (1-3) [1]: ", "1")

	expenses := l.All(sortKey, true)
	switch view {
	case "1":
		now := time.Now()
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(models.DateLayout)
		end := now.Format(models.DateLayout)
		expenses = filterByRange(expenses, start, end)
	case "3":
		start := prompt(sc, "Start date (YYYY-MM-DD): ")
		end := prompt(sc, "End date (YYYY-MM-DD): ")
		if !validDate(start) || !validDate(end) {
			fmt.Println(warningStyle.Render("Invalid date(s) entered. Showing all expenses."))
		} else {
			expenses = filterByRange(expenses, start, end)
		}
	}

	if len(expenses) == 0 {
		fmt.Println("No expenses found.")
		pause(sc)
		return
	}
	fmt.Println(headerStyle.Render(fmt.Sprintf("\n%-12s %-15s %-10s %-20s", "Date", "Category", "Amount", "Description")))
	for _, exp := range expenses {
		fmt.Printf("%-12s %-15s $%-9.2f %-20s\n", exp.Date, exp.Category, exp.Amount, exp.Description)
	}
	pause(sc)
}

func setBudget(l *ledger.Ledger, sc *bufio.Scanner) {
	fmt.Println(subtleStyle.Render("Categories: " + categoryList()))
	cat, err := models.ParseCategory(prompt(sc, "Enter category: "))
	if err != nil {
		fmt.Println(formatError("Invalid category."))
		pause(sc)
		return
	}
	amount, ok := promptFloat(sc, "Enter budget amount: ")
	if !ok {
		pause(sc)
		return
	}
	period, err := models.ParsePeriod(promptDefault(sc, "Enter period (daily/weekly/monthly) [monthly]: ", "monthly"))
	if err != nil {
		fmt.Println(warningStyle.Render("Invalid period. Using 'monthly'."))
		period = models.Monthly
	}

	if err := l.SetBudget(cat, amount, period); err != nil {
		fmt.Println(formatError(err.Error()))
	} else {
		fmt.Println(formatSuccess(fmt.Sprintf("Budget set for %s: $%.2f (%s)", cat, amount, period)))
	}
	pause(sc)
}

func viewBudgets(l *ledger.Ledger, sc *bufio.Scanner) {
	fmt.Println(formatTitle("Budget Status"))
	statuses := l.AllBudgetStatuses()
	if len(statuses) == 0 {
		fmt.Println("No budgets set. Use option 5 to set budgets.")
		pause(sc)
		return
	}
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-15s %-10s %-10s %-10s %-12s %-10s %s",
		"Category", "Period", "Spent", "Budget", "Remaining", "Used %", "Status")))
	for _, bs := range statuses {
		s := bs.Status
		state := successStyle.Render("OK")
		if s.OverBudget {
			state = errorStyle.Render("OVER")
		}
		fmt.Printf("%-15s %-10s $%-9.2f $%-9.2f $%-11.2f %-9.1f%% %s\n",
			bs.Category, bs.Period, s.Spent, s.BudgetAmount, s.Remaining, s.PercentUsed, state)
	}
	pause(sc)
}

func deleteBudget(l *ledger.Ledger, sc *bufio.Scanner) {
	fmt.Println(subtleStyle.Render("Categories: " + categoryList()))
	cat, err := models.ParseCategory(prompt(sc, "Enter category: "))
	if err != nil {
		fmt.Println(formatError("Invalid category."))
		pause(sc)
		return
	}
	var period models.Period
	if v := prompt(sc, "Enter period to delete (or leave blank for all): "); v != "" {
		period, err = models.ParsePeriod(v)
		if err != nil {
			fmt.Println(formatError("Invalid period."))
			pause(sc)
			return
		}
	}

	if err := l.DeleteBudget(cat, period); err != nil {
		fmt.Println(formatError(err.Error()))
	} else if period == "" {
		fmt.Println(formatSuccess(fmt.Sprintf("All budgets deleted for %s", cat)))
	} else {
		fmt.Println(formatSuccess(fmt.Sprintf("Budget deleted for %s (%s)", cat, period)))
	}
	pause(sc)
}

func showSummary(l *ledger.Ledger, sc *bufio.Scanner) {
	summary := report.NewEngine(l).Summary("", "")
	fmt.Println(formatTitle(fmt.Sprintf("Spending Summary (%s to %s)", summary.Start, summary.End)))
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-15s %-10s %-12s %s", "Category", "Spent", "% of Total", "Budget Status")))
	for _, cat := range models.Categories {
		data := summary.Categories[cat]
		status := "No budget"
		if data.Budget.HasBudget {
			status = fmt.Sprintf("$%.2f/$%.2f (%s)", data.Budget.Spent, data.Budget.BudgetAmount, data.Budget.Period)
			if data.Budget.OverBudget {
				status += " " + errorStyle.Render("OVER")
			} else {
				status += " " + successStyle.Render("OK")
			}
		}
		fmt.Printf("%-15s $%-9.2f %-11.1f%% %s\n", cat, data.Spent, data.PercentOfTotal, status)
	}
	fmt.Printf("\nTotal Spent: $%.2f\n", summary.TotalSpent)
	pause(sc)
}

func showInsights(l *ledger.Ledger, sc *bufio.Scanner) {
	insights := report.NewEngine(l).Insights()
	fmt.Println(formatTitle("Financial Insights"))
	fmt.Printf("Total Monthly Spending: $%.2f\n", insights.TotalSpending)
	fmt.Printf("Top Spending Category: %s\n", insights.TopCategory)

	if len(insights.BudgetAlerts) > 0 {
		fmt.Println("\n" + errorStyle.Render("Budget Alerts:"))
		for _, alert := range insights.BudgetAlerts {
			fmt.Println("  " + alert)
		}
	}
	if len(insights.Recommendations) > 0 {
		fmt.Println("\n" + warningStyle.Render("Recommendations:"))
		for _, rec := range insights.Recommendations {
			fmt.Println("  " + rec)
		}
	}
	fmt.Println("\n" + successStyle.Render("Savings Tips:"))
	for _, tip := range insights.SavingsTips {
		fmt.Println("  " + tip)
	}
	pause(sc)
}

func showStatistics(a *app.App, sc *bufio.Scanner) {
	info, err := a.UserInfo()
	if err != nil {
		fmt.Println(formatError(err.Error()))
		pause(sc)
		return
	}
	fmt.Println(formatTitle("User Statistics"))
	fmt.Printf("Username: %s\n", info.Username)
	fmt.Printf("Registered: %s\n", info.RegistrationDate)
	fmt.Printf("Last Login: %s\n", info.LastLogin)
	fmt.Printf("Total Expenses: %d\n", info.Stats.TotalExpenses)
	fmt.Printf("Total Amount Spent: $%.2f\n", info.Stats.TotalSpent)
	fmt.Printf("Average Expense: $%.2f\n", info.Stats.AverageExpense)
	fmt.Printf("Most Used Category: %s\n", info.Stats.MostUsedCategory)
	fmt.Printf("Most Spent Category: %s\n", info.Stats.MostSpentCategory)
	fmt.Printf("Active Budgets: %d\n", info.Stats.ActiveBudgets)
	fmt.Printf("First Expense Date: %s\n", info.Stats.FirstExpenseDate)
	fmt.Printf("Last Expense Date: %s\n", info.Stats.LastExpenseDate)
	pause(sc)
}

func clearAll(l *ledger.Ledger, sc *bufio.Scanner) {
	if confirm := prompt(sc, "Delete ALL expenses and budgets? (y/N): "); confirm != "y" && confirm != "Y" {
		fmt.Println("Cancelled.")
		pause(sc)
		return
	}
	if err := l.ClearAll(); err != nil {
		fmt.Println(formatError(err.Error()))
	} else {
		fmt.Println(formatSuccess("All data cleared successfully"))
	}
	pause(sc)
}

func printNumberedExpenses(expenses []*models.Expense) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("\n%-4s %-28s %-12s %-15s %-10s %s",
		"#", "ID", "Date", "Category", "Amount", "Description")))
	for i, exp := range expenses {
		fmt.Printf("%-4d %-28s %-12s %-15s $%-9.2f %s\n",
			i+1, exp.ID, exp.Date, exp.Category, exp.Amount, exp.Description)
	}
}

// selectExpense accepts either a row number from the printed table or a
// full expense id.
func selectExpense(sc *bufio.Scanner, expenses []*models.Expense, verb string) (string, bool) {
	selection := prompt(sc, fmt.Sprintf("Enter the number or full ID of the expense to %s: ", verb))
	if idx, err := strconv.Atoi(selection); err == nil {
		if idx < 1 || idx > len(expenses) {
			fmt.Println(formatError("Invalid selection number."))
			return "", false
		}
		return expenses[idx-1].ID, true
	}
	return selection, true
}

func filterByRange(expenses []*models.Expense, start, end string) []*models.Expense {
	var out []*models.Expense
	for _, exp := range expenses {
		if exp.Date >= start && exp.Date <= end {
			out = append(out, exp)
		}
	}
	return out
}

func validDate(s string) bool {
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}
