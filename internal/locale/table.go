package locale

type entry struct {
	id         string
	hour24     bool
	monthFirst bool
	am, pm     string
	separator  string
	months     [12]string
}

var numericMonths = [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"}

// entries mirrors the localizations shipped with the picker. Order matters:
// entries[0] is the fallback.
var entries = []entry{
	{
		id: "en-US", hour24: false, monthFirst: true, am: "AM", pm: "PM", separator: ":",
		months: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	},
	{
		id: "en-GB", hour24: true, monthFirst: false, am: "am", pm: "pm", separator: ":",
		months: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sept", "Oct", "Nov", "Dec"},
	},
	{
		id: "ar", hour24: false, monthFirst: false, am: "ص", pm: "م", separator: ":",
		months: [12]string{"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو", "يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"},
	},
	{
		id: "da", hour24: true, monthFirst: false, am: "AM", pm: "PM", separator: ".",
		months: [12]string{"jan.", "feb.", "mar.", "apr.", "maj", "jun.", "jul.", "aug.", "sep.", "okt.", "nov.", "dec."},
	},
	{
		id: "de", hour24: true, monthFirst: false, am: "AM", pm: "PM", separator: ":",
		months: [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
	},
	{
		id: "el", hour24: false, monthFirst: false, am: "π.μ.", pm: "μ.μ.", separator: ":",
		months: [12]string{"Ιαν", "Φεβ", "Μαρ", "Απρ", "Μαΐ", "Ιουν", "Ιουλ", "Αυγ", "Σεπ", "Οκτ", "Νοε", "Δεκ"},
	},
	{
		id: "es", hour24: true, monthFirst: false, am: "a. m.", pm: "p. m.", separator: ":",
		months: [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	},
	{
		id: "fi", hour24: true, monthFirst: false, am: "ap.", pm: "ip.", separator: ".",
		months: [12]string{"tammi", "helmi", "maalis", "huhti", "touko", "kesä", "heinä", "elo", "syys", "loka", "marras", "joulu"},
	},
	{
		id: "fr", hour24: true, monthFirst: false, am: "AM", pm: "PM", separator: ":",
		months: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	},
	{
		id: "he", hour24: true, monthFirst: false, am: "לפנה״צ", pm: "אחה״צ", separator: ":",
		months: [12]string{"ינו׳", "פבר׳", "מרץ", "אפר׳", "מאי", "יוני", "יולי", "אוג׳", "ספט׳", "אוק׳", "נוב׳", "דצמ׳"},
	},
	{
		id: "ja", hour24: true, monthFirst: true, am: "午前", pm: "午後", separator: ":",
		months: numericMonths,
	},
	{
		id: "nl", hour24: true, monthFirst: false, am: "a.m.", pm: "p.m.", separator: ":",
		months: [12]string{"jan", "feb", "mrt", "apr", "mei", "jun", "jul", "aug", "sep", "okt", "nov", "dec"},
	},
	{
		id: "ro", hour24: true, monthFirst: false, am: "a.m.", pm: "p.m.", separator: ":",
		months: [12]string{"ian.", "feb.", "mar.", "apr.", "mai", "iun.", "iul.", "aug.", "sept.", "oct.", "nov.", "dec."},
	},
	{
		id: "ru", hour24: true, monthFirst: false, am: "AM", pm: "PM", separator: ":",
		months: [12]string{"янв.", "февр.", "март", "апр.", "май", "июнь", "июль", "авг.", "сент.", "окт.", "нояб.", "дек."},
	},
	{
		id: "sv", hour24: true, monthFirst: false, am: "fm", pm: "em", separator: ":",
		months: [12]string{"jan.", "feb.", "mars", "apr.", "maj", "juni", "juli", "aug.", "sep.", "okt.", "nov.", "dec."},
	},
	{
		id: "zh-Hans", hour24: true, monthFirst: true, am: "上午", pm: "下午", separator: ":",
		months: numericMonths,
	},
	{
		id: "zh-Hant", hour24: false, monthFirst: true, am: "上午", pm: "下午", separator: ":",
		months: numericMonths,
	},
}
