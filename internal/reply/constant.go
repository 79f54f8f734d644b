package reply

// Canned texts. All are sent with HTML parse mode.
const (
	TextWelcome = "👋 Вітаю! Я бот сервісного центру.\n\n" +
		"Оберіть потрібний пункт меню нижче або просто напишіть своє питання, " +
		"і я передам його адміністратору."

	TextSubmitRequest = "📝 <b>Подати заявку</b>\n\n" +
		"Опишіть одним повідомленням:\n" +
		"• модель пристрою;\n" +
		"• що саме сталося;\n" +
		"• як з вами зв'язатися.\n\n" +
		"Ми опрацюємо заявку та відповімо найближчим часом."

	TextDiagnostics = "🔧 <b>Діагностика</b>\n\n" +
		"Діагностика допомагає визначити причину несправності та вартість ремонту. " +
		"Опишіть симптоми якомога детальніше, і майстер підкаже подальші кроки."

	TextSupport = "🆘 <b>Підтримка</b>\n\n" +
		"Напишіть своє питання у цей чат, і адміністратор відповість вам особисто."

	TextAcknowledgment = "✅ Дякуємо! Ваше повідомлення передано адміністратору. " +
		"Ми відповімо найближчим часом."

	TextBotStarted = "Бот запущений ✅"

	// adminNotificationFormat: username, display name, chat id, text.
	adminNotificationFormat = "📩 <b>Нове повідомлення</b>\n" +
		"Від: %s\n" +
		"Ім'я: %s\n" +
		"Chat ID: <code>%d</code>\n\n" +
		"%s"

	placeholderMissing = "—"
)
