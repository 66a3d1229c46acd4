package speech

import (
	"sort"
	"strings"
)

// greek maps lowercase Greek letter commands to their spoken names, var-forms alias the base letter
var greek = map[string]string{
	"alpha":      "alpha",
	"beta":       "beta",
	"gamma":      "gamma",
	"delta":      "delta",
	"epsilon":    "epsilon",
	"zeta":       "zeta",
	"eta":        "eta",
	"theta":      "theta",
	"iota":       "iota",
	"kappa":      "kappa",
	"lambda":     "lambda",
	"mu":         "mu",
	"nu":         "nu",
	"xi":         "xi",
	"omicron":    "omicron",
	"pi":         "pi",
	"rho":        "rho",
	"sigma":      "sigma",
	"tau":        "tau",
	"upsilon":    "upsilon",
	"phi":        "phi",
	"chi":        "chi",
	"psi":        "psi",
	"omega":      "omega",
	"varepsilon": "epsilon",
	"vartheta":   "theta",
	"varpi":      "pi",
	"varrho":     "rho",
	"varsigma":   "sigma",
	"varphi":     "phi",
}

// upperGreek maps capital Greek letter commands, the case is not spoken
var upperGreek = map[string]string{
	"Alpha":   "alpha",
	"Beta":    "beta",
	"Gamma":   "gamma",
	"Delta":   "delta",
	"Epsilon": "epsilon",
	"Zeta":    "zeta",
	"Eta":     "eta",
	"Theta":   "theta",
	"Iota":    "iota",
	"Kappa":   "kappa",
	"Lambda":  "lambda",
	"Mu":      "mu",
	"Nu":      "nu",
	"Xi":      "xi",
	"Omicron": "omicron",
	"Pi":      "pi",
	"Rho":     "rho",
	"Sigma":   "sigma",
	"Tau":     "tau",
	"Upsilon": "upsilon",
	"Phi":     "phi",
	"Chi":     "chi",
	"Psi":     "psi",
	"Omega":   "omega",
}

// glyphs maps Unicode math characters to padded phrases
var glyphs = map[rune]string{
	'≤': " less than or equal to ",
	'≥': " greater than or equal to ",
	'≠': " not equal to ",
	'≈': " approximately equal to ",
	'∈': " is an element of ",
	'∉': " is not an element of ",
	'⊂': " proper subset of ",
	'⊆': " subset or equal to ",
	'⊃': " proper superset of ",
	'⊇': " superset or equal to ",
	'∪': " union ",
	'∩': " intersection ",
	'→': " to ",
	'↦': " maps to ",
	'⇒': " implies ",
	'⇔': " if and only if ",
	'∀': " for all ",
	'∃': " there exists ",
	'∑': " sum ",
	'∏': " product ",
	'√': " square root of ",
	'∞': " infinity ",
	'±': " plus or minus ",
	'∂': " partial ",
	'·': " times ",
	'×': " times ",
	'÷': " divided by ",
	'|': " absolute value bars ",
	'‖': " norm ",
}

// commands maps control sequences without arguments to padded phrases
var commands = map[string]string{
	"langle":     " angle ",
	"rangle":     " angle ",
	"le":         " less than or equal to ",
	"leq":        " less than or equal to ",
	"ge":         " greater than or equal to ",
	"geq":        " greater than or equal to ",
	"neq":        " not equal to ",
	"ne":         " not equal to ",
	"approx":     " approximately equal to ",
	"in":         " is an element of ",
	"notin":      " is not an element of ",
	"subset":     " proper subset of ",
	"subseteq":   " subset or equal to ",
	"supset":     " proper superset of ",
	"supseteq":   " superset or equal to ",
	"cup":        " union ",
	"cap":        " intersection ",
	"to":         " to ",
	"rightarrow": " to ",
	"mapsto":     " maps to ",
	"implies":    " implies ",
	"iff":        " if and only if ",
	"forall":     " for all ",
	"exists":     " there exists ",
	"cdot":       " times ",
	"times":      " times ",
	"pm":         " plus or minus ",
	"mp":         " minus or plus ",
	"ldots":      " dot dot dot ",
	"cdots":      " dot dot dot ",
	"infty":      " infinity ",
	"partial":    " partial ",
	"nabla":      " nabla ",
	"propto":     " proportional to ",
	"angle":      " angle ",
	"triangle":   " triangle ",
	"Vert":       " norm ",
}

// sizing are delimiter size hints which carry no spoken meaning
var sizing = map[string]bool{
	"left":  true,
	"right": true,
	"big":   true,
	"Big":   true,
	"bigg":  true,
	"Bigg":  true,
	"bigl":  true,
	"bigr":  true,
	"Bigl":  true,
	"Bigr":  true,
}

// functions are named operators spoken before their argument
var functions = map[string]string{
	"sin":    "sine of ",
	"cos":    "cosine of ",
	"tan":    "tangent of ",
	"csc":    "cosecant of ",
	"sec":    "secant of ",
	"cot":    "cotangent of ",
	"arcsin": "arc sine of ",
	"arccos": "arc cosine of ",
	"arctan": "arc tangent of ",
	"sinh":   "hyperbolic sine of ",
	"cosh":   "hyperbolic cosine of ",
	"tanh":   "hyperbolic tangent of ",
	"log":    "logarithm of ",
	"ln":     "natural logarithm of ",
	"exp":    "exponential of ",
	"max":    "maximum of ",
	"min":    "minimum of ",
	"det":    "determinant of ",
	"dim":    "dimension of ",
	"rank":   "rank of ",
}

// numberSets maps the letter of a \mathbb{...} macro to its phrase
var numberSets = map[string]string{
	"R": " R ",
	"N": " natural numbers ",
	"Z": " integers ",
	"Q": " rational numbers ",
	"C": " complex numbers ",
}

// spokenLetters are single letters and Greek names which are never quoted as variables
var spokenLetters = func() map[string]bool {
	letters := map[string]bool{"a": true, "i": true, "j": true}
	for _, name := range greek {
		letters[name] = true
	}

	return letters
}()

// literalLetters are passed through as is, keeping their case
var literalLetters = map[string]bool{"R": true}

// symbol returns the phrase of a control sequence without arguments, either a
// command or a Greek letter.
func symbol(name string) (string, bool) {
	if v, ok := commands[name]; ok {
		return v, true
	}

	if v, ok := greek[name]; ok {
		return " " + v + " ", true
	}

	if v, ok := upperGreek[name]; ok {
		return " " + v + " ", true
	}

	return "", false
}

// builtinNames lists every name known to the dictionaries and handlers, sorted
var builtinNames = func() []string {
	var names []string
	for _, table := range []map[string]string{commands, greek, upperGreek, functions, templates} {
		for name := range table {
			names = append(names, name)
		}
	}

	for letter := range numberSets {
		names = append(names, "mathbb{"+letter+"}")
	}

	sort.Strings(names)
	return names
}()

// substituteGlyphs replaces the Unicode math characters with their phrases
func substituteGlyphs(s string) string {
	if strings.IndexFunc(s, func(r rune) bool { _, ok := glyphs[r]; return ok }) < 0 {
		return s
	}

	var b strings.Builder
	for _, r := range s {
		if phrase, ok := glyphs[r]; ok {
			b.WriteString(phrase)
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
