// Package i18n is a static en/ru string table.
package i18n

import (
	"fmt"

	"github.com/lumastudio/storefront/pkg/enums"
	"golang.org/x/text/language"
)

// MessageID names an entry in the table.
type MessageID string

const (
	MsgInvalidEmail           MessageID = "invalid_email"
	MsgPasswordTooShort       MessageID = "password_too_short"
	MsgEmailRegistered        MessageID = "email_registered"
	MsgIncorrectCredentials   MessageID = "incorrect_credentials"
	MsgCheckoutMissingFields  MessageID = "checkout_missing_fields"
	MsgAdminProductInvalid    MessageID = "admin_product_invalid"
	MsgVerificationCodeLength MessageID = "verification_code_length"
	MsgAdminOnly              MessageID = "admin_only"
	MsgUnknownProduct         MessageID = "unknown_product"
	MsgUnknownScreen          MessageID = "unknown_screen"
	MsgEmptyCart              MessageID = "empty_cart"
	MsgStorageUnavailable     MessageID = "storage_unavailable"
	MsgInvalidInput           MessageID = "invalid_input"
	MsgUnexpected             MessageID = "unexpected"

	MsgOnboardingChip     MessageID = "onboarding_chip"
	MsgOnboardingTitle    MessageID = "onboarding_title"
	MsgOnboardingSubtitle MessageID = "onboarding_subtitle"
	MsgOnboardingCTA      MessageID = "onboarding_cta"
	MsgAuthTitle          MessageID = "auth_title"
	MsgVerifyTitle        MessageID = "verify_title"
	MsgVerifyDescription  MessageID = "verify_description"
	MsgHomeSubtitle       MessageID = "home_subtitle"
	MsgLoading            MessageID = "loading"
	MsgNoResults          MessageID = "no_results"
	MsgBackToCollection   MessageID = "back_to_collection"
	MsgFinishAndColor     MessageID = "finish_and_color"
	MsgAddToCart          MessageID = "add_to_cart"
	MsgFreeDelivery       MessageID = "free_delivery"
	MsgCartTitle          MessageID = "cart_title"
	MsgCartEmpty          MessageID = "cart_empty"
	MsgSubtotal           MessageID = "subtotal"
	MsgShipping           MessageID = "shipping"
	MsgShippingNote       MessageID = "shipping_note"
	MsgCheckoutTitle      MessageID = "checkout_title"
	MsgDiscount           MessageID = "discount"
	MsgTotal              MessageID = "total"
	MsgPromoHint          MessageID = "promo_hint"
	MsgProfileTitle       MessageID = "profile_title"
	MsgProfileGuest       MessageID = "profile_guest"
	MsgNotificationsTitle MessageID = "notifications_title"
	MsgOrderCreated       MessageID = "order_created"
	MsgNewChairs          MessageID = "new_chairs"
	MsgFavoritesTitle     MessageID = "favorites_title"
	MsgFavoritesEmpty     MessageID = "favorites_empty"
	MsgOrdersTitle        MessageID = "orders_title"
	MsgOrdersEmpty        MessageID = "orders_empty"
	MsgLifetimeValue      MessageID = "lifetime_value"
	MsgAdminTitle         MessageID = "admin_title"
	MsgTotalProducts      MessageID = "total_products"
	MsgTotalOrders        MessageID = "total_orders"
	MsgRevenue            MessageID = "revenue"
	MsgLatestOrders       MessageID = "latest_orders"
	MsgSettingsTitle      MessageID = "settings_title"
	MsgThemeLabel         MessageID = "theme_label"
	MsgLanguageLabel      MessageID = "language_label"
	MsgPushNotifications  MessageID = "push_notifications"
	MsgEmailNotifications MessageID = "email_notifications"
	MsgPrivacyTitle       MessageID = "privacy_title"
	MsgPrivacyContent     MessageID = "privacy_content"
	MsgTermsTitle         MessageID = "terms_title"
	MsgTermsContent       MessageID = "terms_content"
	MsgOn                 MessageID = "on"
	MsgOff                MessageID = "off"
)

var table = map[enums.Lang]map[MessageID]string{
	enums.LangEN: {
		MsgInvalidEmail:           "Please enter a valid e-mail.",
		MsgPasswordTooShort:       "Password must be at least 6 characters.",
		MsgEmailRegistered:        "This e-mail is already registered. Use login instead.",
		MsgIncorrectCredentials:   "Incorrect e-mail or password.",
		MsgCheckoutMissingFields:  "Please fill in name, e-mail and shipping address.",
		MsgAdminProductInvalid:    "Please provide name, price (> 0), and main image URL.",
		MsgVerificationCodeLength: "Code must be 6 digits",
		MsgAdminOnly:              "Admin panel is available only for the admin account.",
		MsgUnknownProduct:         "This product is no longer available.",
		MsgUnknownScreen:          "Unknown screen.",
		MsgEmptyCart:              "Your cart is empty.",
		MsgStorageUnavailable:     "Storage is unavailable. Changes are kept until you quit.",
		MsgInvalidInput:           "Please check the highlighted input.",
		MsgUnexpected:             "Something went wrong.",

		MsgOnboardingChip:     "Furniture, reimagined for slow living.",
		MsgOnboardingTitle:    "Curated furniture for warm, modern spaces",
		MsgOnboardingSubtitle: "Discover handcrafted pieces, soft curves, and tactile materials.",
		MsgOnboardingCTA:      "Get Started",
		MsgAuthTitle:          "Sign in or create an account",
		MsgVerifyTitle:        "Verify your email",
		MsgVerifyDescription:  "We sent a verification code to your email",
		MsgHomeSubtitle:       "Furniture Shop",
		MsgLoading:            "Loading collection...",
		MsgNoResults:          "Nothing matches these filters.",
		MsgBackToCollection:   "Back to collection",
		MsgFinishAndColor:     "Finish & color",
		MsgAddToCart:          "Add to cart - $%s",
		MsgFreeDelivery:       "Free delivery from $500 · 30-day at-home trial.",
		MsgCartTitle:          "Cart",
		MsgCartEmpty:          "Your cart is empty. Add a piece you love.",
		MsgSubtotal:           "Subtotal",
		MsgShipping:           "Shipping",
		MsgShippingNote:       "Calculated at checkout",
		MsgCheckoutTitle:      "Checkout",
		MsgDiscount:           "Discount",
		MsgTotal:              "Total",
		MsgPromoHint:          "WELCOME10 or FREESHIP",
		MsgProfileTitle:       "Profile",
		MsgProfileGuest:       "Guest",
		MsgNotificationsTitle: "Notifications",
		MsgOrderCreated:       "Your order was created",
		MsgNewChairs:          "New lounge chairs",
		MsgFavoritesTitle:     "Favourites",
		MsgFavoritesEmpty:     "No favourites yet.",
		MsgOrdersTitle:        "Order history",
		MsgOrdersEmpty:        "No orders yet.",
		MsgLifetimeValue:      "Lifetime value",
		MsgAdminTitle:         "Admin panel",
		MsgTotalProducts:      "Total products",
		MsgTotalOrders:        "Total orders",
		MsgRevenue:            "Revenue",
		MsgLatestOrders:       "Latest orders",
		MsgSettingsTitle:      "Settings",
		MsgThemeLabel:         "Theme",
		MsgLanguageLabel:      "Language",
		MsgPushNotifications:  "Push notifications",
		MsgEmailNotifications: "Email notifications",
		MsgPrivacyTitle:       "Privacy & Policy",
		MsgPrivacyContent:     "Your data is protected and used only to improve our service. We do not share information with third parties without your consent.",
		MsgTermsTitle:         "Terms & Conditions",
		MsgTermsContent:       "By using our service, you agree to these terms of service. Returns are accepted within 30 days of purchase.",
		MsgOn:                 "on",
		MsgOff:                "off",
	},
	enums.LangRU: {
		MsgInvalidEmail:           "Введите корректный e-mail.",
		MsgPasswordTooShort:       "Пароль должен быть не короче 6 символов.",
		MsgEmailRegistered:        "Этот e-mail уже зарегистрирован. Используйте вход.",
		MsgIncorrectCredentials:   "Неверная почта или пароль.",
		MsgCheckoutMissingFields:  "Заполните имя, e-mail и адрес доставки.",
		MsgAdminProductInvalid:    "Заполните имя, цену (> 0) и главное фото.",
		MsgVerificationCodeLength: "Код должен состоять из 6 цифр",
		MsgAdminOnly:              "Доступ к админ-панели есть только у администратора.",
		MsgUnknownProduct:         "Этот товар больше недоступен.",
		MsgUnknownScreen:          "Неизвестный экран.",
		MsgEmptyCart:              "Ваша корзина пуста.",
		MsgStorageUnavailable:     "Хранилище недоступно. Изменения сохранятся до выхода.",
		MsgInvalidInput:           "Проверьте введённые данные.",
		MsgUnexpected:             "Что-то пошло не так.",

		MsgOnboardingChip:     "Мебель, переосмысленная для спокойной жизни.",
		MsgOnboardingTitle:    "Подобранная мебель для тёплых современных интерьеров",
		MsgOnboardingSubtitle: "Откройте для себя мебель с мягкими формами и тактильными материалами.",
		MsgOnboardingCTA:      "Начать",
		MsgAuthTitle:          "Войдите или создайте аккаунт",
		MsgVerifyTitle:        "Подтвердите почту",
		MsgVerifyDescription:  "Мы отправили код подтверждения на вашу почту",
		MsgHomeSubtitle:       "Магазин мебели",
		MsgLoading:            "Загружаем коллекцию...",
		MsgNoResults:          "Ничего не найдено.",
		MsgBackToCollection:   "Назад к коллекции",
		MsgFinishAndColor:     "Отделка и цвет",
		MsgAddToCart:          "В корзину - $%s",
		MsgFreeDelivery:       "Бесплатная доставка от $500 · 30 дней на возврат дома.",
		MsgCartTitle:          "Корзина",
		MsgCartEmpty:          "Ваша корзина пуста. Добавьте товар, который вам нравится.",
		MsgSubtotal:           "Итого",
		MsgShipping:           "Доставка",
		MsgShippingNote:       "Рассчитывается при оформлении",
		MsgCheckoutTitle:      "Оформление",
		MsgDiscount:           "Скидка",
		MsgTotal:              "К оплате",
		MsgPromoHint:          "WELCOME10 или FREESHIP",
		MsgProfileTitle:       "Профиль",
		MsgProfileGuest:       "Гость",
		MsgNotificationsTitle: "Уведомления",
		MsgOrderCreated:       "Ваш заказ создан",
		MsgNewChairs:          "Новые кресла в разделе «Chairs»",
		MsgFavoritesTitle:     "Избранное",
		MsgFavoritesEmpty:     "В избранном пока пусто.",
		MsgOrdersTitle:        "История заказов",
		MsgOrdersEmpty:        "Пока заказов нет.",
		MsgLifetimeValue:      "Накопительная сумма",
		MsgAdminTitle:         "Админ-панель",
		MsgTotalProducts:      "Всего товаров",
		MsgTotalOrders:        "Всего заказов",
		MsgRevenue:            "Выручка",
		MsgLatestOrders:       "Последние заказы",
		MsgSettingsTitle:      "Настройки",
		MsgThemeLabel:         "Тема",
		MsgLanguageLabel:      "Язык",
		MsgPushNotifications:  "Push-уведомления",
		MsgEmailNotifications: "Email-уведомления",
		MsgPrivacyTitle:       "Конфиденциальность",
		MsgPrivacyContent:     "Ваши данные защищены и используются только для улучшения сервиса. Мы не передаём информацию третьим лицам без вашего согласия.",
		MsgTermsTitle:         "Условия использования",
		MsgTermsContent:       "Используя наш сервис, вы соглашаетесь с условиями обслуживания. Возврат товара возможен в течение 30 дней с момента покупки.",
		MsgOn:                 "вкл",
		MsgOff:                "выкл",
	},
}

var categoryNames = map[enums.Lang]map[string]string{
	enums.LangEN: {enums.CategoryAll: "All", "Chairs": "Chairs", "Sofas": "Sofas", "Tables": "Tables"},
	enums.LangRU: {enums.CategoryAll: "Все", "Chairs": "Кресла", "Sofas": "Диваны", "Tables": "Столы"},
}

// T looks up id for lang. Unknown languages use English and unknown ids
// render as the id itself. Args are applied with fmt.Sprintf.
func T(lang enums.Lang, id MessageID, args ...any) string {
	msgs, ok := table[lang]
	if !ok {
		msgs = table[enums.LangEN]
	}
	msg, ok := msgs[id]
	if !ok {
		msg, ok = table[enums.LangEN][id]
		if !ok {
			return string(id)
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Category returns the display name of a category or the All wildcard.
func Category(lang enums.Lang, category string) string {
	names, ok := categoryNames[lang]
	if !ok {
		names = categoryNames[enums.LangEN]
	}
	if name, ok := names[category]; ok {
		return name
	}
	return category
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Russian})

// ParseLang maps a BCP 47 tag such as "ru-RU" onto a supported Lang.
func ParseLang(raw string) (enums.Lang, error) {
	tag, err := language.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid language %q: %w", raw, err)
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return "", fmt.Errorf("unsupported language %q", raw)
	}
	if idx == 1 {
		return enums.LangRU, nil
	}
	return enums.LangEN, nil
}
