package postprocess

// defaultTitles lists titles and abbreviations that must not be
// treated as sentence endings. The lexicon is language-specific data,
// not logic: extend it with WithTitles or a lexicon file loaded via
// LoadTitles rather than editing code.
var defaultTitles = []string{
	// German titles
	"Dr",       // Doktor
	"Prof",     // Professor
	"Hr",       // Herr
	"Fr",       // Frau
	"Dipl.-Ing", // Diplom-Ingenieur
	"Mag",      // Magister
	"Lic",      // Lizentiat
	"Dr.-Ing",  // Doktor-Ingenieur
	"Dr. med",  // Doktor der Medizin
	"Dr. rer. nat", // Doktor der Naturwissenschaften
	"Dr. phil", // Doktor der Philosophie
	"Dr. h.c",  // Ehren-Doktor
	"Prof. Dr", // Professor Doktor

	// Common German abbreviations
	"usw",  // und so weiter
	"bzw",  // beziehungsweise
	"resp", // respektive
	"ca",   // circa
	"z. B", // zum Beispiel
	"z.B.", // zum Beispiel
	"d. h", // das heißt
	"d.h.", // das heißt
	"u. a", // unter anderem
	"u.a.", // unter anderem
	"u. ä", // und ähnliche
	"u.Ä.", // und ähnliche
	"ggf",  // gegebenenfalls
	"vgl",  // vergleiche
	"Abb",  // Abbildung
	"Nr",   // Nummer
	"evtl", // eventuell
	"etc",  // et cetera
	"inkl", // inklusive
	"zzgl", // zuzüglich
	"o. Ä", // oder Ähnliches
	"o.Ä.", // oder Ähnliches
	"Mio",  // Million
	"Mrd",  // Milliarde
	"Tel",  // Telefon
	"Fax",  // Fax
	"Str",  // Straße
	"Hnr",  // Hausnummer
	"Bd",   // Band

	// English titles
	"Mr",    // Mister
	"Mrs",   // Mistress
	"Ms",    // Miss
	"Jr",    // Junior
	"Sr",    // Senior
	"M.A",   // Master of Arts
	"M. A",  // Master of Arts (spaced variant)
	"M.Sc",  // Master of Science
	"M. Sc", // Master of Science (spaced variant)
	"M.Eng", // Master of Engineering
	"M. Eng", // Master of Engineering (spaced variant)
	"B.A",   // Bachelor of Arts
	"B. A",  // Bachelor of Arts (spaced variant)
	"B.Sc",  // Bachelor of Science
	"B. Sc", // Bachelor of Science (spaced variant)
	"Ph.D",  // Doctor of Philosophy

	// Address and place abbreviations
	"St",   // Saint or Street
	"Mt",   // Mount
	"Ft",   // Fort or Featuring
	"Rd",   // Road
	"Blvd", // Boulevard
	"Ave",  // Avenue
	"Sq",   // Square
	"Ln",   // Lane
	"Pl",   // Place
	"Ste",  // Suite
	"Apt",  // Apartment
	"Fl",   // Floor

	// Company-related abbreviations
	"Inc",  // Incorporated
	"Ltd",  // Limited
	"Co",   // Company
	"Corp", // Corporation

	// Common English abbreviations
	"i.e", // that is
	"e.g", // for example
	"cf",  // confer
	"vs",  // versus
}
