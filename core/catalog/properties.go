package catalog

// PropertyID identifies one localized informational field of a font face.
// The values mirror the OS informational-string enumeration, so the
// copyright notice is id 1. The enumeration is closed: providers supplying
// ids outside the table are ignored at construction.
type PropertyID int

const (
	PropertyCopyright                    PropertyID = 1
	PropertyVersions                     PropertyID = 2
	PropertyTrademark                    PropertyID = 3
	PropertyManufacturer                 PropertyID = 4
	PropertyDesigner                     PropertyID = 5
	PropertyDesignerURL                  PropertyID = 6
	PropertyDescription                  PropertyID = 7
	PropertyVendorURL                    PropertyID = 8
	PropertyLicenseDescription           PropertyID = 9
	PropertyLicenseInfoURL               PropertyID = 10
	PropertyWin32FamilyNames             PropertyID = 11
	PropertyWin32SubfamilyNames          PropertyID = 12
	PropertyPreferredFamilyNames         PropertyID = 13
	PropertyPreferredSubfamilyNames      PropertyID = 14
	PropertySampleText                   PropertyID = 15
	PropertyFullName                     PropertyID = 16
	PropertyPostscriptName               PropertyID = 17
	PropertyPostscriptCIDName            PropertyID = 18
	PropertyWeightStretchStyleFamilyName PropertyID = 19
	PropertyDesignScriptLanguageTag      PropertyID = 20
	PropertySupportedScriptLanguageTag   PropertyID = 21
	PropertyTypographicFamilyNames       PropertyID = 22
	PropertyTypographicSubfamilyNames    PropertyID = 23
	PropertyWWSFamilyName                PropertyID = 24
)

type propertyDef struct {
	id   PropertyID
	name string
	// filterable marks properties that carry a font-property-id mapping and
	// so may be used as predicates by Collection.MatchingVariants. Derived
	// and purely informational strings cannot.
	filterable bool
}

// propertyTable is the canonical property enumeration. Its order is the
// iteration order of every PropertyMap view.
var propertyTable = []propertyDef{
	{PropertyCopyright, "copyright", false},
	{PropertyVersions, "versions", false},
	{PropertyTrademark, "trademark", false},
	{PropertyManufacturer, "manufacturer", false},
	{PropertyDesigner, "designer", false},
	{PropertyDesignerURL, "designer_url", false},
	{PropertyDescription, "description", false},
	{PropertyVendorURL, "vendor_url", false},
	{PropertyLicenseDescription, "license_description", false},
	{PropertyLicenseInfoURL, "license_info_url", false},
	{PropertyWin32FamilyNames, "win32_family_names", true},
	{PropertyWin32SubfamilyNames, "win32_subfamily_names", false},
	{PropertyPreferredFamilyNames, "preferred_family_names", true},
	{PropertyPreferredSubfamilyNames, "preferred_subfamily_names", true},
	{PropertySampleText, "sample_text", false},
	{PropertyFullName, "full_name", true},
	{PropertyPostscriptName, "postscript_name", true},
	{PropertyPostscriptCIDName, "postscript_cid_name", false},
	{PropertyWeightStretchStyleFamilyName, "weight_stretch_style_family_name", true},
	{PropertyDesignScriptLanguageTag, "design_script_language_tag", true},
	{PropertySupportedScriptLanguageTag, "supported_script_language_tag", true},
	{PropertyTypographicFamilyNames, "typographic_family_names", true},
	{PropertyTypographicSubfamilyNames, "typographic_subfamily_names", false},
	{PropertyWWSFamilyName, "wws_family_name", false},
}

var (
	propertyByName = make(map[string]propertyDef, len(propertyTable))
	propertyByID   = make(map[PropertyID]propertyDef, len(propertyTable))
)

func init() {
	for _, def := range propertyTable {
		propertyByName[def.name] = def
		propertyByID[def.id] = def
	}
}

// Name returns the canonical string name for a property id, or "" when the
// id is outside the closed enumeration.
func (id PropertyID) Name() string {
	return propertyByID[id].name
}

// PropertyByName resolves a canonical property name to its id.
func PropertyByName(name string) (PropertyID, bool) {
	def, ok := propertyByName[name]
	return def.id, ok
}

// KnownPropertyNames lists every property name in canonical order.
func KnownPropertyNames() []string {
	names := make([]string, len(propertyTable))
	for i, def := range propertyTable {
		names[i] = def.name
	}
	return names
}
