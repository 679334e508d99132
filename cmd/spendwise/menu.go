package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"spendwise/pkg/app"
	"spendwise/pkg/models"
)

// runMenu drives the interactive loop. Every error is printed and
// control returns to the menu; nothing here is fatal.
func runMenu(a *app.App) error {
	sc := bufio.NewScanner(os.Stdin)
	for {
		clearScreen()
		fmt.Println(formatTitle("Expense Tracker"))
		fmt.Println("1. Register")
		fmt.Println("2. Login")
		fmt.Println("3. Exit")

		switch prompt(sc, "\nChoose option (1-3): ") {
		case "1":
			username := prompt(sc, "Enter username: ")
			password := prompt(sc, "Enter password: ")
			if err := a.Register(username, password); err != nil {
				fmt.Println(formatError(err.Error()))
			} else {
				fmt.Println(formatSuccess("User registered successfully"))
			}
			pause(sc)
		case "2":
			username := prompt(sc, "Enter username: ")
			password := prompt(sc, "Enter password: ")
			if err := a.Login(username, password); err != nil {
				fmt.Println(formatError(err.Error()))
				pause(sc)
				continue
			}
			fmt.Println(formatSuccess("Login successful"))
			userMenu(a, sc)
		case "3":
			fmt.Println("Goodbye!")
			return nil
		default:
			fmt.Println(formatError("Invalid choice. Please try again."))
			pause(sc)
		}
	}
}

func prompt(sc *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !sc.Scan() {
		return ""
	}
	return strings.TrimSpace(sc.Text())
}

func promptDefault(sc *bufio.Scanner, label, fallback string) string {
	if v := prompt(sc, label); v != "" {
		return v
	}
	return fallback
}

func promptFloat(sc *bufio.Scanner, label string) (float64, bool) {
	v, err := strconv.ParseFloat(prompt(sc, label), 64)
	if err != nil {
		fmt.Println(formatError("Invalid amount. Please enter a number."))
		return 0, false
	}
	return v, true
}

// promptCategory resolves a category name, falling back to Other the
// way the menu always has.
func promptCategory(sc *bufio.Scanner) models.Category {
	fmt.Println(subtleStyle.Render("Categories: " + categoryList()))
	name := prompt(sc, "Enter category: ")
	cat, err := models.ParseCategory(name)
	if err != nil {
		fmt.Println(warningStyle.Render("Invalid category. Using 'Other'."))
		return models.Other
	}
	return cat
}

func categoryList() string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}

func pause(sc *bufio.Scanner) {
	fmt.Print("Press Enter to continue...")
	sc.Scan()
}

func clearScreen() {
	fmt.Print("\033[H\033[2J")
}
