package utils

import "github.com/yeremiapane/table-order-app/config"

// CalculateGST menghitung komponen pajak dari subtotal. Ketiganya dihitung
// independen dari tarif masing-masing; cgst+sgst tidak dijamin sama dengan
// gst kecuali tarif dikonfigurasi konsisten. Total order = subtotal + gst.
func CalculateGST(subtotal float64) (cgst, sgst, gst float64) {
	cfg := config.Get()
	cgst = subtotal * (cfg.CGSTPercentage / 100)
	sgst = subtotal * (cfg.SGSTPercentage / 100)
	gst = subtotal * (cfg.GSTPercentage / 100)
	return cgst, sgst, gst
}
