package importer

// Chase reads Chase checking exports
// (Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #).
// Posting dates are month first.
func Chase() Parser {
	return &statement{
		format:      "chase",
		numFields:   7,
		dateLayout:  "01/02/2006",
		colDate:     1,
		colDesc:     2,
		colAmount:   3,
		dateTitle:   "Posting Date",
		descTitle:   "Description",
		amountTitle: "Amount",
	}
}
