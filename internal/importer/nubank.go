package importer

// Nubank reads Nubank checking account exports
// (Data,Valor,Identificador,Descrição) with DD/MM/YYYY dates.
func Nubank() Parser {
	return &statement{
		format:      "nubank",
		numFields:   4,
		colDate:     0,
		colAmount:   1,
		colDesc:     3,
		dateTitle:   "Data",
		amountTitle: "Valor",
		descTitle:   "Descrição",
	}
}
