// Package zones maps free-text place descriptions to JAKIM prayer-time
// zone codes. The gazetteer is a static copy of JAKIM's published zone
// list; matching is a plain lowercase keyword scan, the same approach the
// display widgets use.
package zones

import "strings"

// Zone is one JAKIM prayer-time region.
type Zone struct {
	Code  string // e.g. "JHR02"
	State string
	// Areas lists the districts/landmarks covered, in the wording JAKIM
	// publishes. The lowercased forms double as match keywords.
	Areas []string
}

// DefaultCode is the fallback zone when nothing else resolves: Kuala
// Lumpur / Putrajaya.
const DefaultCode = "WLY01"

// all is ordered by state then code, the order JAKIM lists them in.
var all = []Zone{
	{"JHR01", "Johor", []string{"Pulau Aur", "Pulau Pemanggil"}},
	{"JHR02", "Johor", []string{"Johor Bahru", "Kota Tinggi", "Mersing", "Kulai"}},
	{"JHR03", "Johor", []string{"Kluang", "Pontian"}},
	{"JHR04", "Johor", []string{"Batu Pahat", "Muar", "Segamat", "Tangkak"}},
	{"KDH01", "Kedah", []string{"Kota Setar", "Kubang Pasu", "Pokok Sena", "Alor Setar"}},
	{"KDH02", "Kedah", []string{"Kuala Muda", "Yan", "Pendang", "Sungai Petani"}},
	{"KDH03", "Kedah", []string{"Padang Terap", "Sik"}},
	{"KDH04", "Kedah", []string{"Baling"}},
	{"KDH05", "Kedah", []string{"Bandar Baharu", "Kulim"}},
	{"KDH06", "Kedah", []string{"Langkawi"}},
	{"KDH07", "Kedah", []string{"Puncak Gunung Jerai"}},
	{"KTN01", "Kelantan", []string{"Kota Bharu", "Bachok", "Pasir Puteh", "Tumpat", "Pasir Mas", "Tanah Merah", "Machang", "Kuala Krai", "Mukim Chiku"}},
	{"KTN02", "Kelantan", []string{"Gua Musang", "Jeli", "Lojing"}},
	{"MLK01", "Melaka", []string{"Melaka", "Alor Gajah", "Jasin"}},
	{"NGS01", "Negeri Sembilan", []string{"Tampin", "Jempol"}},
	{"NGS02", "Negeri Sembilan", []string{"Jelebu", "Kuala Pilah", "Rembau"}},
	{"NGS03", "Negeri Sembilan", []string{"Port Dickson", "Seremban"}},
	{"PHG01", "Pahang", []string{"Pulau Tioman"}},
	{"PHG02", "Pahang", []string{"Kuantan", "Pekan", "Muadzam Shah"}},
	{"PHG03", "Pahang", []string{"Jerantut", "Temerloh", "Maran", "Bera", "Chenor", "Jengka"}},
	{"PHG04", "Pahang", []string{"Bentong", "Lipis", "Raub"}},
	{"PHG05", "Pahang", []string{"Genting Sempah", "Janda Baik", "Bukit Tinggi"}},
	{"PHG06", "Pahang", []string{"Cameron Highlands", "Genting Highlands", "Bukit Fraser"}},
	{"PLS01", "Perlis", []string{"Perlis", "Kangar", "Padang Besar", "Arau"}},
	{"PNG01", "Pulau Pinang", []string{"Pulau Pinang", "Penang", "George Town", "Bukit Mertajam", "Butterworth"}},
	{"PRK01", "Perak", []string{"Tapah", "Slim River", "Tanjung Malim"}},
	{"PRK02", "Perak", []string{"Kuala Kangsar", "Sungai Siput", "Ipoh", "Batu Gajah", "Kampar"}},
	{"PRK03", "Perak", []string{"Lenggong", "Pengkalan Hulu", "Grik"}},
	{"PRK04", "Perak", []string{"Temengor", "Belum"}},
	{"PRK05", "Perak", []string{"Kampung Gajah", "Teluk Intan", "Bagan Datuk", "Seri Iskandar", "Beruas", "Parit", "Lumut", "Sitiawan", "Pulau Pangkor"}},
	{"PRK06", "Perak", []string{"Selama", "Taiping", "Bagan Serai", "Parit Buntar"}},
	{"PRK07", "Perak", []string{"Bukit Larut"}},
	{"SBH01", "Sabah", []string{"Sandakan", "Bukit Garam", "Semawang", "Temanggong", "Tambisan"}},
	{"SBH02", "Sabah", []string{"Beluran", "Telupid", "Pinangah", "Terusan", "Kuamut"}},
	{"SBH03", "Sabah", []string{"Lahad Datu", "Silabukan", "Kunak", "Sahabat", "Semporna", "Tungku"}},
	{"SBH04", "Sabah", []string{"Tawau", "Balong", "Merotai", "Kalabakan"}},
	{"SBH05", "Sabah", []string{"Kudat", "Kota Marudu", "Pitas", "Pulau Banggi"}},
	{"SBH06", "Sabah", []string{"Gunung Kinabalu"}},
	{"SBH07", "Sabah", []string{"Kota Kinabalu", "Ranau", "Kota Belud", "Tuaran", "Penampang", "Papar", "Putatan"}},
	{"SBH08", "Sabah", []string{"Pensiangan", "Keningau", "Tambunan", "Nabawan"}},
	{"SBH09", "Sabah", []string{"Beaufort", "Kuala Penyu", "Sipitang", "Tenom", "Long Pasia", "Membakut", "Weston"}},
	{"SWK01", "Sarawak", []string{"Limbang", "Lawas", "Sundar", "Trusan"}},
	{"SWK02", "Sarawak", []string{"Miri", "Niah", "Bekenu", "Sibuti", "Marudi"}},
	{"SWK03", "Sarawak", []string{"Pandan", "Belaga", "Suai", "Tatau", "Sebauh", "Bintulu"}},
	{"SWK04", "Sarawak", []string{"Sibu", "Mukah", "Dalat", "Song", "Igan", "Oya", "Balingian", "Kanowit", "Kapit"}},
	{"SWK05", "Sarawak", []string{"Sarikei", "Matu", "Julau", "Rajang", "Daro", "Bintangor", "Belawai"}},
	{"SWK06", "Sarawak", []string{"Lubok Antu", "Sri Aman", "Roban", "Debak", "Kabong", "Lingga", "Engkelili", "Betong", "Spaoh", "Pusa", "Saratok"}},
	{"SWK07", "Sarawak", []string{"Serian", "Simunjan", "Samarahan", "Sebuyau", "Meludam"}},
	{"SWK08", "Sarawak", []string{"Kuching", "Bau", "Lundu", "Sematan"}},
	{"SGR01", "Selangor", []string{"Gombak", "Petaling", "Sepang", "Hulu Langat", "Hulu Selangor", "Shah Alam", "Subang Jaya"}},
	{"SGR02", "Selangor", []string{"Kuala Selangor", "Sabak Bernam"}},
	{"SGR03", "Selangor", []string{"Klang", "Kuala Langat"}},
	{"TRG01", "Terengganu", []string{"Kuala Terengganu", "Marang", "Kuala Nerus"}},
	{"TRG02", "Terengganu", []string{"Besut", "Setiu"}},
	{"TRG03", "Terengganu", []string{"Hulu Terengganu"}},
	{"TRG04", "Terengganu", []string{"Dungun", "Kemaman"}},
	{"WLY01", "Wilayah Persekutuan", []string{"Kuala Lumpur", "Putrajaya"}},
	{"WLY02", "Wilayah Persekutuan", []string{"Labuan"}},
}

// All returns the full gazetteer in JAKIM's published order. The returned
// slice is shared; callers must not modify it.
func All() []Zone {
	return all
}

// Lookup validates an explicit zone code, case-insensitively.
func Lookup(code string) (Zone, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, z := range all {
		if z.Code == code {
			return z, true
		}
	}
	return Zone{}, false
}

// Match scans the gazetteer for the first zone whose area keyword appears
// in the given place string. The place is expected lowercased free text
// (city/region/country); matching is substring-based, the widget family's
// behavior. ok is false when nothing matches — callers fall back to a
// configured default.
func Match(place string) (Zone, bool) {
	place = strings.ToLower(place)
	if strings.TrimSpace(place) == "" {
		return Zone{}, false
	}
	for _, z := range all {
		for _, area := range z.Areas {
			if strings.Contains(place, strings.ToLower(area)) {
				return z, true
			}
		}
	}
	return Zone{}, false
}
