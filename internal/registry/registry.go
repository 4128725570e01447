// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package registry holds the static language and category tables for the
// Bantuan support client.
package registry

import (
	"golang.org/x/text/language"
)

// =============================================================================
// LANGUAGE REGISTRY
// =============================================================================

// DefaultLanguageCode is the code every unknown language resolves to.
const DefaultLanguageCode = "en"

// Language describes one supported interface language.
type Language struct {
	// Code is the short language code used on the wire ("en", "id", ...).
	Code string
	// DisplayName is the human-readable name shown in the language selector.
	DisplayName string
	// SpeechLocale is the BCP 47 tag handed to the speech recognizer.
	SpeechLocale string
	// Placeholder is the input-field placeholder text.
	Placeholder string
	// Greeting seeds the message log on startup and after a clear.
	Greeting string
	// SwitchNotice announces a switch into this language.
	SwitchNotice string
}

// SpeechTag returns the canonical BCP 47 tag for the speech locale.
// language.Make never fails; malformed tags degrade to the und tag.
func (l Language) SpeechTag() language.Tag {
	return language.Make(l.SpeechLocale)
}

// languages is keyed by code. Display order is kept separately in codeOrder.
var languages = map[string]Language{
	"en": {
		Code:         "en",
		DisplayName:  "English",
		SpeechLocale: "en-US",
		Placeholder:  "Type your message...",
		Greeting:     "Hello! Welcome to Bantuan Support. How can I help you today?",
		SwitchNotice: "Language switched to English. How can I help you?",
	},
	"id": {
		Code:         "id",
		DisplayName:  "Bahasa Indonesia",
		SpeechLocale: "id-ID",
		Placeholder:  "Ketik pesan Anda...",
		Greeting:     "Halo! Selamat datang di Dukungan Bantuan. Bagaimana cara saya membantu Anda hari ini?",
		SwitchNotice: "Bahasa diubah ke Bahasa Indonesia. Bagaimana saya bisa membantu?",
	},
	"ms": {
		Code:         "ms",
		DisplayName:  "Bahasa Malaysia",
		SpeechLocale: "ms-MY",
		Placeholder:  "Taip mesej anda...",
		Greeting:     "Halo! Selamat datang ke Sokongan Bantuan. Bagaimana saya boleh membantu anda hari ini?",
		SwitchNotice: "Bahasa ditukar ke Bahasa Malaysia. Bagaimana saya boleh membantu?",
	},
	"th": {
		Code:         "th",
		DisplayName:  "ไทย (Thai)",
		SpeechLocale: "th-TH",
		Placeholder:  "พิมพ์ข้อความของคุณ...",
		Greeting:     "สวัสดี! ยินดีต้อนรับสู่ Bantuan Support วันนี้ฉันสามารถช่วยคุณได้อย่างไร",
		SwitchNotice: "เปลี่ยนภาษาเป็นไทยแล้ว ฉันจะช่วยอะไรคุณได้บ้าง",
	},
	"vi": {
		Code:         "vi",
		DisplayName:  "Tiếng Việt",
		SpeechLocale: "vi-VN",
		Placeholder:  "Nhập tin nhắn của bạn...",
		Greeting:     "Xin chào! Chào mừng bạn đến với Hỗ trợ Bantuan. Tôi có thể giúp bạn như thế nào hôm nay?",
		SwitchNotice: "Đã chuyển sang Tiếng Việt. Tôi có thể giúp gì cho bạn?",
	},
	"tl": {
		Code:         "tl",
		DisplayName:  "Filipino",
		SpeechLocale: "fil-PH",
		Placeholder:  "I-type ang iyong mensahe...",
		Greeting:     "Halo! Maligayang pagdating sa Bantuan Support. Paano ko kayo matutulungan ngayong araw?",
		SwitchNotice: "Ang wika ay inilipat sa Filipino. Paano kita matutulungan?",
	},
	"my": {
		Code:         "my",
		DisplayName:  "မြန်မာ (Myanmar)",
		SpeechLocale: "my-MM",
		Placeholder:  "သင့်စာကို ရိုက်ထည့်ပါ...",
		Greeting:     "ဟယ်လို! Bantuan Support မှ ကြိုဆိုပါသည်။ ယနေ့ မည်သို့ ကူညီပေးရမည်နည်း။",
		SwitchNotice: "ဘာသာစကားကို မြန်မာသို့ ပြောင်းပြီးပါပြီ။",
	},
	"km": {
		Code:         "km",
		DisplayName:  "ខ្មែរ (Khmer)",
		SpeechLocale: "km-KH",
		Placeholder:  "វាយសាររបស់អ្នក...",
		Greeting:     "សួស្តី! សូមស្វាគមន៍មកកាន់ Bantuan Support។ តើខ្ញុំអាចជួយអ្នកយ៉ាងដូចម្តេច?",
		SwitchNotice: "បានប្តូរភាសាទៅជាខ្មែរ។",
	},
	"lo": {
		Code:         "lo",
		DisplayName:  "ລາວ (Lao)",
		SpeechLocale: "lo-LA",
		Placeholder:  "ພິມຂໍ້ຄວາມຂອງທ່ານ...",
		Greeting:     "ສະບາຍດີ! ຍິນດີຕ້ອນຮັບສູ່ Bantuan Support. ຂ້ອຍສາມາດຊ່ວຍທ່ານໄດ້ແນວໃດ?",
		SwitchNotice: "ປ່ຽນພາສາເປັນລາວແລ້ວ.",
	},
	"bn": {
		Code:         "bn",
		DisplayName:  "বাংলা (Bengali)",
		SpeechLocale: "bn-BD",
		Placeholder:  "আপনার বার্তা লিখুন...",
		Greeting:     "হ্যালো! Bantuan সাপোর্টে স্বাগতম। আজ আমি আপনাকে কীভাবে সাহায্য করতে পারি?",
		SwitchNotice: "ভাষা বাংলায় পরিবর্তন করা হয়েছে।",
	},
}

// codeOrder is the display order of the language selector.
var codeOrder = []string{"en", "id", "ms", "th", "vi", "tl", "my", "km", "lo", "bn"}

// Resolve returns the language entry for code.
// Unknown codes resolve to English; Resolve is total and never errors.
func Resolve(code string) Language {
	if l, ok := languages[code]; ok {
		return l
	}
	return languages[DefaultLanguageCode]
}

// IsSupported reports whether code is a known language code.
func IsSupported(code string) bool {
	_, ok := languages[code]
	return ok
}

// Codes returns all supported language codes in display order.
func Codes() []string {
	out := make([]string, len(codeOrder))
	copy(out, codeOrder)
	return out
}

// =============================================================================
// CATEGORY REGISTRY
// =============================================================================

// DefaultCategoryID is the category every unknown id resolves to.
const DefaultCategoryID = "general"

// Category identifies one support category.
type Category struct {
	// ID is the opaque category id echoed into outgoing requests.
	ID string
	// Label is the display label shown on the category control.
	Label string
}

var categories = []Category{
	{ID: "general", Label: "General"},
	{ID: "technical", Label: "Technical"},
	{ID: "account", Label: "Account"},
	{ID: "billing", Label: "Billing"},
}

// Categories returns the category controls in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ResolveCategory returns the category for id, or the general category
// when id is unknown.
func ResolveCategory(id string) Category {
	for _, c := range categories {
		if c.ID == id {
			return c
		}
	}
	return Category{ID: DefaultCategoryID, Label: "General"}
}

// IsSupportedCategory reports whether id names a known category.
func IsSupportedCategory(id string) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
