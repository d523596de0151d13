package models

// Weekday is one of the five workdays a lunch menu covers
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
)

// Weekdays in the order menus are scanned
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

var weekdayLabels = map[Weekday]string{
	Monday:    "måndag",
	Tuesday:   "tisdag",
	Wednesday: "onsdag",
	Thursday:  "torsdag",
	Friday:    "fredag",
}

// Label returns the Swedish name of the day in lower case
func (d Weekday) Label() string {
	return weekdayLabels[d]
}

func (d Weekday) Valid() bool {
	_, ok := weekdayLabels[d]
	return ok
}

// WeeklyMenu maps every weekday to the dishes listed for it, in feed order.
type WeeklyMenu map[Weekday][]string

// NewWeeklyMenu returns a menu with an empty dish list for every weekday
func NewWeeklyMenu() WeeklyMenu {
	menu := make(WeeklyMenu, len(Weekdays))
	for _, day := range Weekdays {
		menu[day] = []string{}
	}
	return menu
}

func (m WeeklyMenu) Dishes(day Weekday) []string {
	return m[day]
}

func (m WeeklyMenu) Add(day Weekday, dish string) {
	m[day] = append(m[day], dish)
}

// IsEmpty reports whether no day has any dishes
func (m WeeklyMenu) IsEmpty() bool {
	for _, dishes := range m {
		if len(dishes) > 0 {
			return false
		}
	}
	return true
}

// MenuResult carries either a weekly menu or the reason it could not be
// loaded. A failed result still holds an all-empty menu.
type MenuResult struct {
	Menu WeeklyMenu
	URL  string
	Err  error
}

// MenuFailure builds a failed result with an empty menu
func MenuFailure(url string, err error) MenuResult {
	return MenuResult{
		Menu: NewWeeklyMenu(),
		URL:  url,
		Err:  err,
	}
}

func (r MenuResult) Failed() bool {
	return r.Err != nil
}
