package role

// AT-SPI role codes, in wire order.
const (
	Invalid Role = iota
	AcceleratorLabel
	Alert
	Animation
	Arrow
	Calendar
	Canvas
	CheckBox
	CheckMenuItem
	ColorChooser
	ColumnHeader
	ComboBox
	DateEditor
	DesktopIcon
	DesktopFrame
	Dial
	Dialog
	DirectoryPane
	DrawingArea
	FileChooser
	Filler
	FocusTraversable
	FontChooser
	Frame
	GlassPane
	HTMLContainer
	Icon
	Image
	InternalFrame
	Label
	LayeredPane
	List
	ListItem
	Menu
	MenuBar
	MenuItem
	OptionPane
	PageTab
	PageTabList
	Panel
	PasswordText
	PopupMenu
	ProgressBar
	PushButton
	RadioButton
	RadioMenuItem
	RootPane
	RowHeader
	ScrollBar
	ScrollPane
	Separator
	Slider
	SpinButton
	SplitPane
	StatusBar
	Table
	TableCell
	TableColumnHeader
	TableRowHeader
	TearoffMenuItem
	Terminal
	Text
	ToggleButton
	ToolBar
	ToolTip
	Tree
	TreeTable
	Unknown
	Viewport
	Window
	Extended
	Header
	Footer
	Paragraph
	Ruler
	Application
	Autocomplete
	EditBar
	Embedded
	Entry
	Chart
	Caption
	DocumentFrame
	Heading
	Page
	Section
	RedundantObject
	Form
	Link
	InputMethodWindow
	TableRow
	TreeItem
	DocumentSpreadsheet
	DocumentPresentation
	DocumentText
	DocumentWeb
	DocumentEmail
	Comment
	ListBox
	Grouping
	ImageMap
	Notification
	InfoBar
	LevelBar
	TitleBar
	BlockQuote
	Audio
	Video
	Definition
	Article
	Landmark
	Log
	Marquee
	Math
	Rating
	Timer
	Static
	MathFraction
	MathRoot
	Subscript
	Superscript
	DescriptionList
	DescriptionTerm
	DescriptionValue
	Footnote
	ContentDeletion
	ContentInsertion
	Mark
	Suggestion
	PushButtonMenu

	// Count is the number of roles in the universe. Valid codes are 0..Count-1.
	Count = int(PushButtonMenu) + 1
)

var names = [Count]string{
	Invalid:              "invalid",
	AcceleratorLabel:     "accelerator label",
	Alert:                "alert",
	Animation:            "animation",
	Arrow:                "arrow",
	Calendar:             "calendar",
	Canvas:               "canvas",
	CheckBox:             "check box",
	CheckMenuItem:        "check menu item",
	ColorChooser:         "color chooser",
	ColumnHeader:         "column header",
	ComboBox:             "combo box",
	DateEditor:           "date editor",
	DesktopIcon:          "desktop icon",
	DesktopFrame:         "desktop frame",
	Dial:                 "dial",
	Dialog:               "dialog",
	DirectoryPane:        "directory pane",
	DrawingArea:          "drawing area",
	FileChooser:          "file chooser",
	Filler:               "filler",
	FocusTraversable:     "focus traversable",
	FontChooser:          "font chooser",
	Frame:                "frame",
	GlassPane:            "glass pane",
	HTMLContainer:        "html container",
	Icon:                 "icon",
	Image:                "image",
	InternalFrame:        "internal frame",
	Label:                "label",
	LayeredPane:          "layered pane",
	List:                 "list",
	ListItem:             "list item",
	Menu:                 "menu",
	MenuBar:              "menu bar",
	MenuItem:             "menu item",
	OptionPane:           "option pane",
	PageTab:              "page tab",
	PageTabList:          "page tab list",
	Panel:                "panel",
	PasswordText:         "password text",
	PopupMenu:            "popup menu",
	ProgressBar:          "progress bar",
	PushButton:           "push button",
	RadioButton:          "radio button",
	RadioMenuItem:        "radio menu item",
	RootPane:             "root pane",
	RowHeader:            "row header",
	ScrollBar:            "scroll bar",
	ScrollPane:           "scroll pane",
	Separator:            "separator",
	Slider:               "slider",
	SpinButton:           "spin button",
	SplitPane:            "split pane",
	StatusBar:            "status bar",
	Table:                "table",
	TableCell:            "table cell",
	TableColumnHeader:    "table column header",
	TableRowHeader:       "table row header",
	TearoffMenuItem:      "tearoff menu item",
	Terminal:             "terminal",
	Text:                 "text",
	ToggleButton:         "toggle button",
	ToolBar:              "tool bar",
	ToolTip:              "tool tip",
	Tree:                 "tree",
	TreeTable:            "tree table",
	Unknown:              "unknown",
	Viewport:             "viewport",
	Window:               "window",
	Extended:             "extended",
	Header:               "header",
	Footer:               "footer",
	Paragraph:            "paragraph",
	Ruler:                "ruler",
	Application:          "application",
	Autocomplete:         "autocomplete",
	EditBar:              "edit bar",
	Embedded:             "embedded",
	Entry:                "entry",
	Chart:                "chart",
	Caption:              "caption",
	DocumentFrame:        "document frame",
	Heading:              "heading",
	Page:                 "page",
	Section:              "section",
	RedundantObject:      "redundant object",
	Form:                 "form",
	Link:                 "link",
	InputMethodWindow:    "input method window",
	TableRow:             "table row",
	TreeItem:             "tree item",
	DocumentSpreadsheet:  "document spreadsheet",
	DocumentPresentation: "document presentation",
	DocumentText:         "document text",
	DocumentWeb:          "document web",
	DocumentEmail:        "document email",
	Comment:              "comment",
	ListBox:              "list box",
	Grouping:             "grouping",
	ImageMap:             "image map",
	Notification:         "notification",
	InfoBar:              "info bar",
	LevelBar:             "level bar",
	TitleBar:             "title bar",
	BlockQuote:           "block quote",
	Audio:                "audio",
	Video:                "video",
	Definition:           "definition",
	Article:              "article",
	Landmark:             "landmark",
	Log:                  "log",
	Marquee:              "marquee",
	Math:                 "math",
	Rating:               "rating",
	Timer:                "timer",
	Static:               "static",
	MathFraction:         "math fraction",
	MathRoot:             "math root",
	Subscript:            "subscript",
	Superscript:          "superscript",
	DescriptionList:      "description list",
	DescriptionTerm:      "description term",
	DescriptionValue:     "description value",
	Footnote:             "footnote",
	ContentDeletion:      "content deletion",
	ContentInsertion:     "content insertion",
	Mark:                 "mark",
	Suggestion:           "suggestion",
	PushButtonMenu:       "push button menu",
}
