package speech

// templates describe what the commands with arguments are spoken as
var templates = map[string]string{
	"frac":       "<a> over <b>",
	"dfrac":      "<a> over <b>",
	"tfrac":      "<a> over <b>",
	"sqrt":       "square root of <a>, or <n> th root of <a>",
	"sum":        "sum from <lower> to <upper>",
	"prod":       "product from <lower> to <upper>",
	"int":        "integral from <lower> to <upper>",
	"binom":      "binomial of <a> and <b>",
	"lim":        "limit as <sub> of",
	"mathbf":     "vector <a>",
	"boldsymbol": "vector <a>",
	"bm":         "vector <a>",
	"vec":        "vector <a>",
	"overline":   "conjugate of <a>",
	"bar":        "conjugate of <a>",
	"hat":        "hat <a>",
	"widehat":    "hat <a>",
	"proj":       "projection of <a> onto <target>",
	"perp":       "perpendicular of <target> onto <a>, or perpendicular to",
	"dot":        "time derivative of <a>",
	"ddot":       "second time derivative of <a>",
}

// command speaks the command name whose arguments start at i, it returns the phrase and
// position after the last consumed argument. Unknown commands are dropped.
func (w *walker) command(name, s string, i int) (string, int) {
	switch name {
	case "frac", "dfrac", "tfrac":
		return w.fraction(s, i)
	case "sqrt":
		return w.root(s, i)
	case "sum":
		return w.limits("sum", s, i)
	case "prod":
		return w.limits("product", s, i)
	case "int":
		return w.limits("integral", s, i)
	case "binom":
		return w.binomial(s, i)
	case "lim":
		return w.limit(s, i)
	case "mathbf", "boldsymbol", "bm", "vec":
		return w.decorate("vector ", s, i)
	case "overline", "bar":
		return w.decorate("conjugate of ", s, i)
	case "hat", "widehat":
		return w.decorate("hat ", s, i)
	case "dot":
		return w.decorate("time derivative of ", s, i)
	case "ddot":
		return w.decorate("second time derivative of ", s, i)
	case "proj":
		return w.projection(s, i)
	case "perp":
		if j := skipSpaces(s, i); j < len(s) && s[j] == '_' {
			return w.perpendicular(s, i)
		}

		return " perpendicular to ", i
	}

	if phrase, ok := functions[name]; ok {
		return " " + phrase, i
	}

	if name != "" {
		w.notice(Notice{Kind: NoticeUnknown, Name: name})
	}

	return "", i
}

// fraction reads \frac{a}{b}
func (w *walker) fraction(s string, i int) (string, int) {
	num, i := readGroup(s, i)
	den, i := readGroup(s, i)

	return " " + w.words(num) + " over " + w.words(den) + " ", i
}

// root reads \sqrt[n]{a}, whitespace may precede the index
func (w *walker) root(s string, i int) (string, int) {
	index, i, ok := readOption(s, skipSpaces(s, i))
	radicand, i := readGroup(s, i)

	if ok && index != "" {
		return " " + w.words(index) + " th root of " + w.words(radicand) + " ", i
	}

	return " square root of " + w.words(radicand) + " ", i
}

// limits reads the optional _{lower} and ^{upper} of sums, products and integrals
func (w *walker) limits(word, s string, i int) (string, int) {
	var lower, upper string

	i = skipSpaces(s, i)
	if i < len(s) && s[i] == '_' {
		lower, i = readGroup(s, i+1)
	}

	i = skipSpaces(s, i)
	if i < len(s) && s[i] == '^' {
		upper, i = readGroup(s, i+1)
	}

	switch {
	case lower != "" && upper != "":
		return " " + word + " from " + w.words(lower) + " to " + w.words(upper) + " ", i
	case lower != "":
		return " " + word + " with lower limit " + w.words(lower) + " ", i
	case upper != "":
		return " " + word + " with upper limit " + w.words(upper) + " ", i
	default:
		return " " + word + " ", i
	}
}

// binomial reads \binom{a}{b}
func (w *walker) binomial(s string, i int) (string, int) {
	a, i := readGroup(s, i)
	b, i := readGroup(s, i)

	return " binomial of " + w.words(a) + " and " + w.words(b) + " ", i
}

// limit reads \lim with an optional subscript
func (w *walker) limit(s string, i int) (string, int) {
	i = skipSpaces(s, i)
	if i < len(s) && s[i] == '_' {
		var sub string
		if sub, i = readGroup(s, i+1); sub != "" {
			return " limit as " + w.words(sub) + " of ", i
		}
	}

	return " limit of ", i
}

// decorate reads one argument and speaks it after the prefix
func (w *walker) decorate(prefix, s string, i int) (string, int) {
	arg, i := readGroup(s, i)

	return " " + prefix + w.words(arg) + " ", i
}

// operand reads the optional _{target} and the argument of \proj and \perp
func (w *walker) operand(s string, i int) (subject, target string, next int) {
	i = skipSpaces(s, i)
	if i < len(s) && s[i] == '_' {
		target, i = readGroup(s, i+1)
	}

	arg, i := readArgument(s, i)
	if arg != "" {
		subject = w.words(arg)
	}

	if target != "" {
		target = w.words(target)
	}

	return subject, target, i
}

// projection reads \proj_{target}{arg}
func (w *walker) projection(s string, i int) (string, int) {
	subject, onto, i := w.operand(s, i)
	if onto != "" {
		return " projection of " + subject + " onto " + onto + " ", i
	}

	return " projection of " + subject + " ", i
}

// perpendicular reads \perp_{target}{arg}, note that target is spoken first
func (w *walker) perpendicular(s string, i int) (string, int) {
	subject, onto, i := w.operand(s, i)

	switch {
	case onto != "" && subject != "":
		return " perpendicular of " + onto + " onto " + subject + " ", i
	case onto != "":
		return " perpendicular of " + onto + " ", i
	default:
		return " perpendicular of " + subject + " ", i
	}
}
