// Package catalog declares the tables of the FAA releasable aircraft
// database and the order of the columns in each archive member. The
// column order must match the order of the fields in the FAA's CSV
// files; the first column of every table doubles as the dedup key.
package catalog

// Table describes one table of the registry snapshot.
type Table struct {
	Name    string
	Columns []string
}

// Key returns the dedup key column (by convention the first column).
func (t Table) Key() string {
	return t.Columns[0]
}

// Default returns the catalog of the seven tables shipped in the FAA
// ReleasableAircraft archive, in load order.
func Default() []Table {
	return []Table{
		// ACFTREF: aircraft model specifications (manufacturer, engine
		// type, category, weight, certification data).
		{Name: "ACFTREF", Columns: []string{
			"CODE", "MFR", "MODEL", "TYPE-ACFT", "TYPE-ENG", "AC-CAT", "BUILD-CERT-IND",
			"NO-ENG", "NO-SEATS", "AC-WEIGHT", "SPEED", "TC-DATA-SHEET", "TC-DATA-HOLDER",
		}},

		// DEALER: dealer certificates, with up to 25 alternate business names.
		{Name: "DEALER", Columns: []string{
			"CERTIFICATE-NUMBER", "OWNERSHIP", "CERTIFICATE-DATE", "EXPIRATION-DATE", "EXPIRATION-FLAG",
			"CERTIFICATE-ISSUE-COUNT", "NAME", "STREET", "STREET2", "CITY", "STATE-ABBREV", "ZIP-CODE",
			"OTHER-NAMES-COUNT", "OTHER-NAMES-1", "OTHER-NAMES-2", "OTHER-NAMES-3", "OTHER-NAMES-4",
			"OTHER-NAMES-5", "OTHER-NAMES-6", "OTHER-NAMES-7", "OTHER-NAMES-8", "OTHER-NAMES-9",
			"OTHER-NAMES-10", "OTHER-NAMES-11", "OTHER-NAMES-12", "OTHER-NAMES-13", "OTHER-NAMES-14",
			"OTHER-NAMES-15", "OTHER-NAMES-16", "OTHER-NAMES-17", "OTHER-NAMES-18", "OTHER-NAMES-19",
			"OTHER-NAMES-20", "OTHER-NAMES-21", "OTHER-NAMES-22", "OTHER-NAMES-23", "OTHER-NAMES-24",
			"OTHER-NAMES-25",
		}},

		// DEREG: historical records of aircraft removed from the registry.
		{Name: "DEREG", Columns: []string{
			"N-NUMBER", "SERIAL-NUMBER", "MFR-MDL-CODE", "STATUS-CODE", "NAME", "STREET-MAIL", "STREET2-MAIL",
			"CITY-MAIL", "STATE-ABBREV-MAIL", "ZIP-CODE-MAIL", "ENG-MFR-MDL", "YEAR-MFR", "CERTIFICATION",
			"REGION", "COUNTY-MAIL", "COUNTRY-MAIL", "AIR-WORTH-DATE", "CANCEL-DATE", "MODE-S-CODE",
			"INDICATOR-GROUP", "EXP-COUNTRY", "LAST-ACT-DATE", "CERT-ISSUE-DATE", "STREET-PHYSICAL",
			"STREET2-PHYSICAL", "CITY-PHYSICAL", "STATE-ABBREV-PHYSICAL", "ZIP-CODE-PHYSICAL",
			"COUNTY-PHYSICAL", "COUNTRY-PHYSICAL", "OTHER-NAMES(1)", "OTHER-NAMES(2)", "OTHER-NAMES(3)",
			"OTHER-NAMES(4)", "OTHER-NAMES(5)", "KIT MFR", "KIT MODEL", "MODE S CODE HEX",
		}},

		// DOCINDEX: liens, security agreements and other legal filings.
		{Name: "DOCINDEX", Columns: []string{
			"TYPE-COLLATERAL", "COLLATERAL", "PARTY", "DOC-ID", "DRDATE", "PROCESSING-DATE", "CORR-DATE",
			"CORR-ID", "SERIAL-ID", "DOC-TYPE",
		}},

		// ENGINE: engine reference data (manufacturer, model, power ratings).
		{Name: "ENGINE", Columns: []string{
			"CODE", "MFR", "MODEL", "TYPE", "HORSEPOWER", "THRUST",
		}},

		// MASTER: all currently registered aircraft.
		{Name: "MASTER", Columns: []string{
			"N-NUMBER", "SERIAL NUMBER", "MFR MDL CODE", "ENG MFR MDL", "YEAR MFR", "TYPE REGISTRANT", "NAME",
			"STREET", "STREET2", "CITY", "STATE", "ZIP CODE", "REGION", "COUNTY", "COUNTRY",
			"LAST ACTION DATE", "CERT ISSUE DATE", "CERTIFICATION", "TYPE AIRCRAFT", "TYPE ENGINE",
			"STATUS CODE", "MODE S CODE", "FRACT OWNER", "AIR WORTH DATE", "OTHER NAMES(1)", "OTHER NAMES(2)",
			"OTHER NAMES(3)", "OTHER NAMES(4)", "OTHER NAMES(5)", "EXPIRATION DATE", "UNIQUE ID",
			"KIT MFR", "KIT MODEL", "MODE S CODE HEX",
		}},

		// RESERVED: N-numbers reserved but not yet registered.
		{Name: "RESERVED", Columns: []string{
			"N-NUMBER", "REGISTRANT", "STREET", "STREET2", "CITY", "STATE", "ZIP CODE", "RSV DATE", "TR",
			"EXP DATE", "N-NUM-CHG", "PURGE DATE",
		}},
	}
}
