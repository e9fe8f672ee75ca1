package tomlrand

import "fmt"

// genDateTime samples date-time = offset-date-time / local-date-time
// / local-date / local-time, uniformly.
func (gen *Generator) genDateTime() (string, Value) {
	switch gen.g.intRange(0, 3) {
	case 0:
		return gen.genOffsetDateTime()
	case 1:
		return gen.genLocalDateTime()
	case 2:
		return gen.genLocalDate()
	default:
		return gen.genLocalTime()
	}
}

// genOffsetDateTime samples offset-date-time = full-date time-delim
// full-time.
func (gen *Generator) genOffsetDateTime() (string, Value) {
	dateStr, date := gen.genLocalDateValue()
	timeStr, tm := gen.genLocalTimeValue()
	tzStr, offsetMin, utc := gen.genTimezone()
	delim := string(choice(gen.g, []rune("Tt ")))
	return dateStr + delim + timeStr + tzStr, OffsetDateTime{Date: date, Time: tm, OffsetMinutes: offsetMin, UTC: utc}
}

// genLocalDateTime samples local-date-time = full-date time-delim
// partial-time.
func (gen *Generator) genLocalDateTime() (string, Value) {
	dateStr, date := gen.genLocalDateValue()
	timeStr, tm := gen.genLocalTimeValue()
	delim := string(choice(gen.g, []rune("Tt ")))
	return dateStr + delim + timeStr, LocalDateTime{Date: date, Time: tm}
}

// genLocalDate samples local-date = full-date and boxes it as a Value.
func (gen *Generator) genLocalDate() (string, Value) {
	s, v := gen.genLocalDateValue()
	return s, v
}

// genLocalTime samples local-time = partial-time and boxes it as a Value.
func (gen *Generator) genLocalTime() (string, Value) {
	s, v := gen.genLocalTimeValue()
	return s, v
}

var daysInMonth = [...]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

func (gen *Generator) genLocalDateValue() (string, LocalDate) {
	year := gen.g.intRange(1000, 9999)
	month := gen.g.intRange(1, 12)
	maxDay := daysInMonth[month]
	if month == 2 && isLeapYear(year) {
		maxDay = 29
	}
	day := gen.g.intRange(1, maxDay)
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), LocalDate{Year: year, Month: month, Day: day}
}

func (gen *Generator) genLocalTimeValue() (string, LocalTime) {
	hour := gen.g.intRange(0, 23)
	minute := gen.g.intRange(0, 59)
	second := gen.g.intRange(0, 59)

	var nanosecond int
	var suffix string
	if gen.g.uniform() < 0.5 {
		suffix = "." + zeros(gen.g.intRange(1, 6))
		nanosecond = 0
	} else {
		r := gen.g.intRange(0, 6)
		usec := gen.g.intRange(0, 999999)
		usec -= usec % pow10(r)
		nanosecond = usec * 1000
		switch {
		case usec == 0:
			suffix = ""
		case usec%1000 == 0:
			suffix = fmt.Sprintf(".%03d", usec/1000)
		default:
			suffix = fmt.Sprintf(".%06d", usec)
		}
	}

	s := fmt.Sprintf("%02d:%02d:%02d", hour, minute, second) + suffix
	return s, LocalTime{Hour: hour, Minute: minute, Second: second, Nanosecond: nanosecond}
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

func pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

// genTimezone samples time-offset = "Z" / ( "+" / "-" ) 2DIGIT ":" 2DIGIT.
func (gen *Generator) genTimezone() (string, int, bool) {
	if gen.g.uniform() < 0.2 {
		return "Z", 0, true
	}
	delta := gen.g.intRange(1-24*60, 24*60-1)
	sign := "+"
	abs := delta
	if delta < 0 {
		sign = "-"
		abs = -delta
	}
	s := fmt.Sprintf("%s%02d:%02d", sign, abs/60, abs%60)
	return s, delta, false
}
