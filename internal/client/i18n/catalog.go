// Package i18n holds the user-facing strings of the admin screens in English
// and Thai.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Catalog struct {
	Tag             language.Tag
	DataUnavailable string
	WriteFailed     string
	Created         string
	Updated         string
	Deleted         string
	NoData          string
	ConfirmDelete   string
	Busy            string
	Invalid         string
	Retry           string
	Cancelled       string
	Statuses        map[string]string
}

var english = Catalog{
	Tag:             language.English,
	DataUnavailable: "data unavailable",
	WriteFailed:     "something went wrong",
	Created:         "record created",
	Updated:         "record updated",
	Deleted:         "record deleted",
	NoData:          "no data",
	ConfirmDelete:   "Are you sure you want to delete this record?",
	Busy:            "a request is already in progress",
	Invalid:         "please correct the fields below",
	Retry:           "Try again?",
	Cancelled:       "cancelled",
	Statuses: map[string]string{
		"pending":   "Pending",
		"completed": "Completed",
		"cancelled": "Cancelled",
	},
}

var thai = Catalog{
	Tag:             language.Thai,
	DataUnavailable: "ไม่สามารถดึงข้อมูลได้",
	WriteFailed:     "เกิดข้อผิดพลาด",
	Created:         "เพิ่มข้อมูลสำเร็จ!",
	Updated:         "แก้ไขข้อมูลสำเร็จ!",
	Deleted:         "ลบข้อมูลสำเร็จ!",
	NoData:          "ไม่มีข้อมูล",
	ConfirmDelete:   "คุณแน่ใจที่จะลบข้อมูลนี้?",
	Busy:            "กำลังดำเนินการ กรุณารอสักครู่",
	Invalid:         "กรุณาตรวจสอบข้อมูลให้ถูกต้อง",
	Retry:           "ลองอีกครั้ง?",
	Cancelled:       "ยกเลิกแล้ว",
	Statuses: map[string]string{
		"pending":   "รอดำเนินการ",
		"completed": "สำเร็จ",
		"cancelled": "ยกเลิก",
	},
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Thai})

// For returns the catalog best matching locale (a BCP 47 tag such as "th" or
// "th-TH"). Anything unparseable or unsupported gets English.
func For(locale string) Catalog {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return english
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No || idx != 1 {
		return english
	}
	return thai
}

// Status returns the display label of an order status, or the raw value
// when it has none.
func (c Catalog) Status(s string) string {
	if l, ok := c.Statuses[s]; ok {
		return l
	}
	return s
}

// Printer formats numbers with the catalog's digit grouping.
func (c Catalog) Printer() *message.Printer {
	return message.NewPrinter(c.Tag)
}
