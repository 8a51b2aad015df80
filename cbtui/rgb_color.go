package cbtui

type RGBColor string

const (
	GrayColor   RGBColor = "#808080"
	WhiteColor  RGBColor = "#ffffff"
	SilverColor RGBColor = "#c0c0c0"
	CyanColor   RGBColor = "#00ffff" // Cyan for focused pane border
	RedColor    RGBColor = "#ff0000"
	BlueColor   RGBColor = "#5f87ff" // Directory names in the table
)
