package constant

const BookingConfirmationTemplate = `จองบริการพ่นโดรนเรียบร้อยแล้ว
รหัสการจอง: %s
ชื่อผู้จอง: %s
พื้นที่: %s ไร่
%s
ราคารวม: %s บาท
มัดจำ: %s บาท
ยอดคงเหลือ: %s บาท

กรุณาโอนมัดจำไปที่ %s
แล้วอัปโหลดสลิปพร้อมรหัสการจองเพื่อยืนยันคิว`

const PaymentReceivedTemplate = `ได้รับสลิปการโอนแล้ว
รหัสการจอง: %s
สถานะ: ชำระมัดจำแล้ว
ทีมงานจะติดต่อกลับเพื่อยืนยันวันบินอีกครั้ง`

const (
	LineCommandBook   = "จองโดรน"
	LineCommandPrice  = "ราคา"
	LineCommandStatus = "สถานะ"
	LineCommandCancel = "ยกเลิก"
)

const (
	LineAskCrop      = "เลือกชนิดพืชที่ต้องการพ่น"
	LineAskSpray     = "เลือกประเภทการพ่น"
	LineAskArea      = "พื้นที่กี่ไร่? (พิมพ์เป็นตัวเลข เช่น 5.5)"
	LineAskPhone     = "ขอเบอร์โทรศัพท์สำหรับติดต่อ"
	LineAskName      = "ขอชื่อผู้จอง"
	LineCancelled    = "ยกเลิกการจองแล้ว พิมพ์ \"จองโดรน\" เพื่อเริ่มใหม่"
	LineNoBookings   = "ยังไม่มีรายการจอง"
	LineFallback     = "พิมพ์ \"จองโดรน\" เพื่อจองบริการ หรือ \"ราคา\" เพื่อดูราคา"
	LinePriceHeader  = "ราคาค่าบริการต่อไร่"
	LineSystemFailed = "ขออภัย ระบบขัดข้อง กรุณาลองใหม่อีกครั้ง"
)

const (
	LineStatusHeader    = "รายการจองล่าสุด"
	LineStatusLine      = "%s: %s (ราคารวม %s บาท)"
	LineBookingRejected = "ไม่สามารถจองได้: %s"
	LineBookingLocked   = "ได้รับการจองจากเบอร์นี้แล้ว กรุณารอสักครู่ก่อนจองใหม่"
)

// LineStatusLabels are the customer facing booking status names.
var LineStatusLabels = map[string]string{
	"pending_payment": "รอชำระมัดจำ",
	"paid":            "ชำระมัดจำแล้ว",
	"completed":       "เสร็จสิ้น",
	"cancelled":       "ยกเลิก",
}
