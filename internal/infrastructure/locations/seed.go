package locations

// DefaultSeed は外部ファイルなしで動かすときの最小マスタ
// LOCATIONS_FILEが指定されればそちらで上書きされる
func DefaultSeed() []Location {
	return []Location{
		{Iata: "ALG", Type: "A", City: "ALGIERS", Name: "HOUARI BOUMEDIENE", Country: "ALGERIA", Region: "AFRICA"},
		{Iata: "ORN", Type: "A", City: "ORAN", Name: "AHMED BEN BELLA", Country: "ALGERIA", Region: "AFRICA"},
		{Iata: "PAR", Type: "C", City: "PARIS", Name: "PARIS", Country: "FRANCE", Region: "EUROPE"},
		{Iata: "CDG", Type: "A", City: "PARIS", Name: "CHARLES DE GAULLE", Country: "FRANCE", Region: "EUROPE"},
		{Iata: "ORY", Type: "A", City: "PARIS", Name: "ORLY", Country: "FRANCE", Region: "EUROPE"},
		{Iata: "LON", Type: "C", City: "LONDON", Name: "LONDON", Country: "UNITED KINGDOM", Region: "EUROPE"},
		{Iata: "LHR", Type: "A", City: "LONDON", Name: "HEATHROW", Country: "UNITED KINGDOM", Region: "EUROPE"},
		{Iata: "TUN", Type: "A", City: "TUNIS", Name: "CARTHAGE", Country: "TUNISIA", Region: "AFRICA"},
		{Iata: "CMN", Type: "A", City: "CASABLANCA", Name: "MOHAMMED V", Country: "MOROCCO", Region: "AFRICA"},
		{Iata: "IST", Type: "A", City: "ISTANBUL", Name: "ISTANBUL AIRPORT", Country: "TURKEY", Region: "EUROPE"},
		{Iata: "FRA", Type: "A", City: "FRANKFURT", Name: "FRANKFURT MAIN", Country: "GERMANY", Region: "EUROPE"},
		{Iata: "MAD", Type: "A", City: "MADRID", Name: "BARAJAS", Country: "SPAIN", Region: "EUROPE"},
		{Iata: "FCO", Type: "A", City: "ROME", Name: "FIUMICINO", Country: "ITALY", Region: "EUROPE"},
		{Iata: "JED", Type: "A", City: "JEDDAH", Name: "KING ABDULAZIZ", Country: "SAUDI ARABIA", Region: "MIDDLE EAST"},
		{Iata: "NYC", Type: "C", City: "NEW YORK", Name: "NEW YORK", Country: "USA"},
		{Iata: "JFK", Type: "A", City: "NEW YORK", Name: "JOHN F KENNEDY", Country: "USA"},
	}
}
