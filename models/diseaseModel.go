package models

import (
	"sort"
	"strings"
)

// NoMedicineFound is returned for disease codes outside the fixed table.
// The visit is still recorded with this value.
const NoMedicineFound = "No medicine found"

// diseaseData maps lower-cased disease names to their static medicine
// suggestion. Process-lifetime constant; never mutated.
var diseaseData = map[string]string{
	"cold":           "Paracetamol, Cetirizine",
	"fever":          "Dolo 650, Crocin",
	"headache":       "Saridon, Disprin",
	"diabetes":       "Metformin, Glimepiride",
	"asthma":         "Inhaler, Montelukast",
	"cough":          "Benadryl, Ascoril",
	"vomiting":       "Ondansetron, Domperidone",
	"diarrhea":       "ORS, Loperamide",
	"high bp":        "Amlodipine, Telmisartan",
	"acidity":        "Pantoprazole, Rantac",
	"back pain":      "Diclofenac, Flexon",
	"joint pain":     "Ibuprofen, Calcium Tablets",
	"skin allergy":   "Cetirizine, Calamine Lotion",
	"eye irritation": "Ciplox Eye Drops, Refresh Tears",
	"ear pain":       "Ciplox Ear Drops, Paracetamol",
	"toothache":      "Combiflam, Clove Oil",
	"menstrual pain": "Meftal Spas, Drotin",
	"constipation":   "Lactulose Syrup, Isabgol",
}

// LookupMedicine resolves a disease code, case-insensitively, to its medicine
// suggestion. Unknown codes resolve to NoMedicineFound instead of an error.
func LookupMedicine(disease string) string {
	if medicine, ok := diseaseData[strings.ToLower(disease)]; ok {
		return medicine
	}
	return NoMedicineFound
}

// DiseaseNames lists the known disease codes in sorted order, for the
// selection dropdown.
func DiseaseNames() []string {
	names := make([]string, 0, len(diseaseData))
	for name := range diseaseData {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
