package console

import "github.com/diogo/helpline/internal/render"

func testTheme() render.Theme {
	theme, _ := render.LookupTheme("tokyonight")
	return theme
}
