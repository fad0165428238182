// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination

import "strconv"

// scope is how many neighbours of the current page get their own button.
const scope = 2

// Button is one link of the pagination bar.
type Button struct {
	Page    int
	Current bool
	Text    string
}

// Buttons builds the pagination bar for page number out of numPages.
//
// Order: "previous" when a previous page exists, the first page, every page
// within [scope] of the current one (first and last excluded), the last page
// while the current page is not the last, "next" when a next page exists.
func Buttons(number, numPages int) []Button {
	var buttons []Button

	if number > 1 {
		buttons = append(buttons, Button{Page: number - 1, Text: "previous"})
	}

	buttons = append(buttons, numbered(1, number))

	for i := 2; i < numPages; i++ {
		if number-scope <= i && i <= number+scope {
			buttons = append(buttons, numbered(i, number))
		}
	}

	if number < numPages {
		buttons = append(buttons, numbered(numPages, number))
		buttons = append(buttons, Button{Page: number + 1, Text: "next"})
	}

	return buttons
}

func numbered(page, current int) Button {
	return Button{Page: page, Current: page == current, Text: strconv.Itoa(page)}
}
