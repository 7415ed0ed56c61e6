// Package i18n holds the UI translation tables and the supported language set.
package i18n

// Default is the language used when nothing is persisted.
const Default = "en"

// Languages lists the supported language codes in display order.
func Languages() []string {
	return []string{"en", "tr"}
}

// Supported reports whether code is a known language.
func Supported(code string) bool {
	_, ok := tables[code]
	return ok
}

// T resolves key against the given language. Unknown languages fall back to
// the default table; unknown keys fall back to the key itself so a missing
// translation never blanks the UI.
func T(lang, key string) string {
	table, ok := tables[lang]
	if !ok {
		table = tables[Default]
	}
	if s, ok := table[key]; ok {
		return s
	}
	if lang != Default {
		if s, ok := tables[Default][key]; ok {
			return s
		}
	}
	return key
}

var tables = map[string]map[string]string{
	"en": {
		"appName":              "Employees App",
		"employeeList":         "Employee List",
		"searchByName":         "Search by name",
		"firstName":            "First Name",
		"lastName":             "Last Name",
		"dateOfEmployment":     "Date of Employment",
		"dateOfBirth":          "Date of Birth",
		"phoneNumber":          "Phone Number",
		"emailAddress":         "Email Address",
		"department":           "Department",
		"position":             "Position",
		"actions":              "Actions",
		"edit":                 "Edit",
		"delete":               "Delete",
		"prev":                 "Prev",
		"next":                 "Next",
		"addNew":               "Add New Employee",
		"employeeNotFound":     "Employee not found.",
		"updatingInformation":  "you are updating the information of",
		"deleteConfirm":        "Are you sure you want to delete this employee?",
		"updateConfirm":        "Save changes to this employee?",
		"language":             "Language",
		"settings":             "Settings",
		"quit":                 "Quit",
		"save":                 "Save",
		"cancel":               "Cancel",
		"saved":                "saved",
		"deleted":              "deleted",
		"noEmployees":          "no employees",
		"firstNameRequired":    "First Name is required.",
		"lastNameRequired":     "Last Name is required.",
		"dateOfEmploymentRequired": "Date of Employment is required.",
		"dateOfBirthRequired":  "Date of Birth is required.",
		"invalidDate":          "Invalid date (use YYYY-MM-DD).",
		"phoneNumberRequired":  "Phone Number is required.",
		"invalidPhone":         "Invalid phone number format.",
		"emailAddressRequired": "Email Address is required.",
		"invalidEmail":         "Invalid email format.",
		"departmentRequired":   "Department is required.",
		"positionRequired":     "Position is required.",
	},
	"tr": {
		"appName":              "Çalışanlar Uygulaması",
		"employeeList":         "Çalışan Listesi",
		"searchByName":         "İsme göre ara",
		"firstName":            "Ad",
		"lastName":             "Soyad",
		"dateOfEmployment":     "İşe Giriş Tarihi",
		"dateOfBirth":          "Doğum Tarihi",
		"phoneNumber":          "Telefon",
		"emailAddress":         "E-posta",
		"department":           "Departman",
		"position":             "Pozisyon",
		"actions":              "İşlemler",
		"edit":                 "Düzenle",
		"delete":               "Sil",
		"prev":                 "Önceki",
		"next":                 "Sonraki",
		"addNew":               "Yeni Çalışan Ekle",
		"employeeNotFound":     "Çalışan bulunamadı.",
		"updatingInformation":  "bilgilerini güncelliyorsunuz",
		"deleteConfirm":        "Bu çalışanı silmek istediğinize emin misiniz?",
		"updateConfirm":        "Değişiklikler kaydedilsin mi?",
		"language":             "Dil",
		"settings":             "Ayarlar",
		"quit":                 "Çıkış",
		"save":                 "Kaydet",
		"cancel":               "İptal",
		"saved":                "kaydedildi",
		"deleted":              "silindi",
		"noEmployees":          "çalışan yok",
		"firstNameRequired":    "Ad alanı zorunludur.",
		"lastNameRequired":     "Soyad alanı zorunludur.",
		"dateOfEmploymentRequired": "İşe Giriş Tarihi zorunludur.",
		"dateOfBirthRequired":  "Doğum Tarihi zorunludur.",
		"invalidDate":          "Geçersiz tarih (YYYY-AA-GG kullanın).",
		"phoneNumberRequired":  "Telefon alanı zorunludur.",
		"invalidPhone":         "Geçersiz telefon numarası.",
		"emailAddressRequired": "E-posta alanı zorunludur.",
		"invalidEmail":         "Geçersiz e-posta formatı.",
		"departmentRequired":   "Departman seçimi zorunludur.",
		"positionRequired":     "Pozisyon seçimi zorunludur.",
	},
}
