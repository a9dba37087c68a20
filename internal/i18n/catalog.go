package i18n

// Message keys. Each one must be translated into every supported language;
// Validate enforces this at startup.
const (
	KeyGreeting             Key = "greeting"
	KeyCollectVehicleManual Key = "collect_vehicle_manual"
	KeyVehicleUncertain     Key = "vehicle_uncertain"
	KeyVehicleConfirm       Key = "vehicle_confirm"
	KeyVehicleCorrection    Key = "vehicle_correction"
	KeyVehicleUnrecognized  Key = "vehicle_unrecognized"
	KeyCollectPart          Key = "collect_part"
	KeySearchingOffers      Key = "searching_offers"
	KeyNoOffers             Key = "no_offers"
	KeyOfferSingleHeader    Key = "offer_single_header"
	KeyOfferMultiHeader     Key = "offer_multi_header"
	KeyLabelBrand           Key = "label_brand"
	KeyLabelPrice           Key = "label_price"
	KeyLabelStock           Key = "label_stock"
	KeyOfferInstant         Key = "offer_instant"
	KeyOfferDeliveryDays    Key = "offer_delivery_days"
	KeyOfferBindingNote     Key = "offer_binding_note"
	KeyOfferMultiBinding    Key = "offer_multi_binding"
	KeyOfferOrderPrompt     Key = "offer_order_prompt"
	KeyOfferChoosePrompt    Key = "offer_choose_prompt"
	KeyOfferChoiceInvalid   Key = "offer_choice_invalid"
	KeyOfferLost            Key = "offer_lost"
	KeyOfferDeclined        Key = "offer_declined"
	KeyOfferConfirmed       Key = "offer_confirmed"
	KeyDeliveryOrPickup     Key = "delivery_or_pickup"
	KeyAskAddress           Key = "ask_address"
	KeyAddressInvalid       Key = "address_invalid"
	KeyAddressSaved         Key = "address_saved"
	KeyPickupLocation       Key = "pickup_location"
	KeyOrderComplete        Key = "order_complete"
	KeyNeedsHuman           Key = "needs_human"
	KeyHandoffFollowUp      Key = "handoff_follow_up"
	KeyCancelled            Key = "cancelled"
	KeyFreshStart           Key = "fresh_start"
	KeyFollowUpPart         Key = "follow_up_part"
	KeyGoodbye              Key = "goodbye"
	KeyAbuseWarning         Key = "abuse_warning"
	KeyNotAvailable         Key = "not_available"
	KeyFallback             Key = "fallback"
)

var catalog = map[Key]map[Language]string{

	KeyGreeting: {
		German:  "Willkommen! 📸 Schicken Sie mir bitte ein Foto Ihres Fahrzeugscheins, oder nennen Sie mir VIN bzw. HSN/TSN.",
		English: "Welcome! 📸 Please send me a photo of your vehicle registration document, or share your VIN or HSN/TSN.",
		Turkish: "Hoş geldiniz! 📸 Lütfen araç ruhsatınızın fotoğrafını gönderin veya VIN ya da HSN/TSN bilgisini yazın.",
		Kurdish: "Bi xêr hatî! 📸 Ji kerema xwe wêneya belgeya qeydkirina wesayîta xwe bişînin, an jî VIN an HSN/TSN binivîsin.",
		Polish:  "Witamy! 📸 Wyślij mi zdjęcie dowodu rejestracyjnego pojazdu lub podaj VIN albo HSN/TSN.",
	},

	KeyCollectVehicleManual: {
		German:  "Bitte nennen Sie mir VIN oder HSN/TSN, oder schicken Sie ein Foto Ihres Fahrzeugscheins, damit ich Ihr Fahrzeug identifizieren kann.",
		English: "Please provide your VIN or HSN/TSN, or send a photo of your registration document so I can identify your vehicle.",
		Turkish: "Aracınızı tanımlayabilmem için lütfen VIN veya HSN/TSN yazın ya da ruhsat fotoğrafı gönderin.",
		Kurdish: "Ji kerema xwe VIN an HSN/TSN binivîsin, an jî wêneya belgeya qeydkirinê bişînin da ku ez wesayîta we nas bikim.",
		Polish:  "Podaj VIN lub HSN/TSN albo wyślij zdjęcie dowodu rejestracyjnego, abym mógł zidentyfikować pojazd.",
	},

	KeyVehicleUncertain: {
		German:  "📷 Leider konnte ich die Daten nicht sicher lesen. Versuchen Sie es bitte mit einem besseren Foto, oder nennen Sie mir VIN bzw. HSN/TSN direkt.",
		English: "📷 I couldn't read the data reliably. Please try a clearer photo, or tell me your VIN or HSN/TSN directly.",
		Turkish: "📷 Verileri net okuyamadım. Lütfen daha net bir fotoğraf deneyin veya VIN ya da HSN/TSN bilgisini doğrudan yazın.",
		Kurdish: "📷 Min nekarî daneyan bi ewlehî bixwînim. Ji kerema xwe wêneyeke zelaltir biceribînin, an jî VIN an HSN/TSN rasterast binivîsin.",
		Polish:  "📷 Nie udało mi się pewnie odczytać danych. Spróbuj z wyraźniejszym zdjęciem lub podaj VIN albo HSN/TSN bezpośrednio.",
	},

	KeyVehicleConfirm: {
		German:  "Ich habe folgendes Fahrzeug erkannt: {summary}. Ist das korrekt? (ja/nein)",
		English: "I identified this vehicle: {summary}. Is that correct? (yes/no)",
		Turkish: "Şu aracı tespit ettim: {summary}. Doğru mu? (evet/hayır)",
		Kurdish: "Min ev wesayît nas kir: {summary}. Rast e? (erê/na)",
		Polish:  "Zidentyfikowałem ten pojazd: {summary}. Czy to się zgadza? (tak/nie)",
	},

	KeyVehicleCorrection: {
		German:  "Verstanden, die Daten stimmen nicht. Schicken Sie mir bitte erneut ein Foto des Fahrzeugscheins oder die korrekte VIN bzw. HSN/TSN.",
		English: "Understood, that data was wrong. Please send the registration photo again or the correct VIN or HSN/TSN.",
		Turkish: "Anladım, veriler yanlıştı. Lütfen ruhsat fotoğrafını tekrar gönderin veya doğru VIN ya da HSN/TSN bilgisini yazın.",
		Kurdish: "Fêm kir, dane ne rast bûn. Ji kerema xwe wêneya belgeyê dîsa bişînin an VIN an HSN/TSN ya rast binivîsin.",
		Polish:  "Rozumiem, dane były błędne. Wyślij ponownie zdjęcie dowodu rejestracyjnego lub poprawny VIN albo HSN/TSN.",
	},

	KeyVehicleUnrecognized: {
		German:  "Das habe ich leider nicht verstanden. Stimmen die Fahrzeugdaten? Bitte antworten Sie mit ja oder nein.",
		English: "Sorry, I didn't understand that. Is the vehicle data correct? Please reply yes or no.",
		Turkish: "Üzgünüm, bunu anlayamadım. Araç bilgileri doğru mu? Lütfen evet veya hayır yazın.",
		Kurdish: "Bibore, min ew fêm nekir. Daneyên wesayîtê rast in? Ji kerema xwe bi erê an na bersiv bidin.",
		Polish:  "Przepraszam, nie zrozumiałem. Czy dane pojazdu są poprawne? Odpowiedz tak lub nie.",
	},

	KeyCollectPart: {
		German:  "Welches Teil benötigen Sie? Bitte nennen Sie auch die Position (vorne/hinten, links/rechts) und eventuelle Symptome.",
		English: "Which part do you need? Please also mention the position (front/rear, left/right) and any symptoms.",
		Turkish: "Hangi parçaya ihtiyacınız var? Lütfen pozisyonu (ön/arka, sol/sağ) ve varsa belirtileri de yazın.",
		Kurdish: "Kîjan perçe hewce ye? Ji kerema xwe pozîsyonê (pêş/paş, çep/rast) û nîşanan jî binivîsin.",
		Polish:  "Jakiej części potrzebujesz? Podaj też pozycję (przód/tył, lewa/prawa) i ewentualne objawy.",
	},

	KeySearchingOffers: {
		German:  "🔍 Ich suche jetzt passende Angebote für Sie. Das kann einen Moment dauern...",
		English: "🔍 I'm now searching for matching offers. This may take a moment...",
		Turkish: "🔍 Şimdi uygun teklifler arıyorum. Bu biraz zaman alabilir...",
		Kurdish: "🔍 Niha ez li pêşniyarên guncav digerim. Ev dikare hinekî dem bigire...",
		Polish:  "🔍 Szukam teraz pasujących ofert. To może chwilę potrwać...",
	},

	KeyNoOffers: {
		German:  "Ich sammle noch Angebote für Ihr Teil. Ich melde mich, sobald ich etwas habe.",
		English: "I'm still collecting offers for your part. I'll get back to you as soon as I have something.",
		Turkish: "Parçanız için hâlâ teklif topluyorum. Bir şey bulur bulmaz size döneceğim.",
		Kurdish: "Ez hîn jî ji bo perçeya we pêşniyaran berhev dikim. Dema tiştek hebe ez ê vegerim.",
		Polish:  "Wciąż zbieram oferty na Twoją część. Odezwę się, gdy tylko coś znajdę.",
	},

	KeyOfferSingleHeader: {
		German:  "✅ *Perfektes Angebot gefunden!*",
		English: "✅ *Perfect match found!*",
		Turkish: "✅ *Mükemmel teklif bulundu!*",
		Kurdish: "✅ *Pêşniyara bêkêmasî hat dîtin!*",
		Polish:  "✅ *Znaleziono idealną ofertę!*",
	},

	KeyOfferMultiHeader: {
		German:  "✅ *Ich habe mehrere Angebote gefunden!*\n\nBitte wählen Sie eines:",
		English: "✅ *I found multiple offers!*\n\nPlease choose one:",
		Turkish: "✅ *Birden fazla teklif buldum!*\n\nLütfen birini seçin:",
		Kurdish: "✅ *Min çend pêşniyar dîtin!*\n\nJi kerema xwe yekê hilbijêrin:",
		Polish:  "✅ *Znalazłem kilka ofert!*\n\nWybierz jedną:",
	},

	KeyLabelBrand: {
		German:  "Marke",
		English: "Brand",
		Turkish: "Marka",
		Kurdish: "Marka",
		Polish:  "Marka",
	},

	KeyLabelPrice: {
		German:  "Preis",
		English: "Price",
		Turkish: "Fiyat",
		Kurdish: "Biha",
		Polish:  "Cena",
	},

	KeyLabelStock: {
		German:  "Verfügbarkeit",
		English: "Stock",
		Turkish: "Stok",
		Kurdish: "Stok",
		Polish:  "Dostępność",
	},

	KeyOfferInstant: {
		German:  "📦 Sofort verfügbar",
		English: "📦 Available instantly",
		Turkish: "📦 Hemen mevcut",
		Kurdish: "📦 Tavilê berdest e",
		Polish:  "📦 Dostępne od ręki",
	},

	KeyOfferDeliveryDays: {
		German:  "🚚 Lieferung in {days} Tagen",
		English: "🚚 Delivery in {days} days",
		Turkish: "🚚 {days} gün içinde teslimat",
		Kurdish: "🚚 Gihandin di {days} rojan de",
		Polish:  "🚚 Dostawa w ciągu {days} dni",
	},

	KeyOfferBindingNote: {
		German:  "⚠️ HINWEIS: Mit Ihrer Bestätigung geben Sie ein verbindliches Kaufangebot bei Ihrem Händler ab.",
		English: "⚠️ NOTE: Confirming constitutes a binding purchase agreement with your dealer.",
		Turkish: "⚠️ NOT: Onayınız, satıcınızla bağlayıcı bir satın alma sözleşmesi anlamına gelir.",
		Kurdish: "⚠️ TÊBÎNÎ: Pejirandina we peymanek kirînê ya girêdayî ye bi firoşkarê we re.",
		Polish:  "⚠️ UWAGA: Potwierdzenie stanowi wiążącą umowę zakupu z Twoim sprzedawcą.",
	},

	KeyOfferMultiBinding: {
		German:  "⚠️ Die Auswahl einer Option gilt als verbindliches Kaufangebot.",
		English: "⚠️ Selecting an option constitutes a binding purchase agreement.",
		Turkish: "⚠️ Bir seçeneği seçmek bağlayıcı bir satın alma teklifi sayılır.",
		Kurdish: "⚠️ Hilbijartina vebijarkekê wekî pêşniyara kirînê ya girêdayî tê hesibandin.",
		Polish:  "⚠️ Wybór opcji stanowi wiążącą ofertę zakupu.",
	},

	KeyOfferOrderPrompt: {
		German:  "Jetzt verbindlich bestellen? (ja/nein)",
		English: "Order now? This is binding. (yes/no)",
		Turkish: "Şimdi sipariş verilsin mi? Bu bağlayıcıdır. (evet/hayır)",
		Kurdish: "Niha sifariş bikin? Ev girêdayî ye. (erê/na)",
		Polish:  "Zamówić teraz? To jest wiążące. (tak/nie)",
	},

	KeyOfferChoosePrompt: {
		German:  "👉 Antworten Sie mit *1*, *2* oder *3*.",
		English: "👉 Reply with *1*, *2* or *3*.",
		Turkish: "👉 *1*, *2* veya *3* ile yanıtlayın.",
		Kurdish: "👉 Bi *1*, *2* an *3* bersiv bidin.",
		Polish:  "👉 Odpowiedz *1*, *2* lub *3*.",
	},

	KeyOfferChoiceInvalid: {
		German:  "Bitte antworten Sie nur mit 1, 2 oder 3.",
		English: "Please reply with 1, 2 or 3 only.",
		Turkish: "Lütfen yalnızca 1, 2 veya 3 ile yanıtlayın.",
		Kurdish: "Ji kerema xwe tenê bi 1, 2 an 3 bersiv bidin.",
		Polish:  "Odpowiedz tylko 1, 2 lub 3.",
	},

	KeyOfferLost: {
		German:  "Dieses Angebot ist leider nicht mehr verfügbar. Einen Moment, ich aktualisiere die Angebote für Sie...",
		English: "That offer is no longer available. One moment, let me refresh the offers for you...",
		Turkish: "Bu teklif artık mevcut değil. Bir dakika, teklifleri sizin için yeniliyorum...",
		Kurdish: "Ev pêşniyar êdî berdest nîne. Kêliyek, ez pêşniyaran ji bo we nû dikim...",
		Polish:  "Ta oferta nie jest już dostępna. Chwileczkę, odświeżam oferty...",
	},

	KeyOfferDeclined: {
		German:  "Kein Problem. Worauf legen Sie Wert – Preis, Marke oder Lieferzeit? Ich suche gern Alternativen.",
		English: "No problem. What matters most to you – price, brand or delivery time? I'm happy to look for alternatives.",
		Turkish: "Sorun değil. Sizin için en önemlisi ne – fiyat, marka veya teslimat süresi? Alternatif arayabilirim.",
		Kurdish: "Pirsgirêk nîne. Ji bo we ya herî girîng çi ye – biha, marka an dema gihandinê? Ez dikarim li alternatîfan bigerim.",
		Polish:  "Żaden problem. Co jest dla Ciebie najważniejsze – cena, marka czy czas dostawy? Chętnie poszukam alternatyw.",
	},

	KeyOfferConfirmed: {
		German:  "Vielen Dank! Ihre Bestellung ({orderId}) wurde gespeichert und ist nun verbindlich. Möchten Sie Lieferung oder Abholung? (L/A)",
		English: "Thank you! Your order ({orderId}) has been saved and is now binding. Would you like delivery or pickup? (D/P)",
		Turkish: "Teşekkürler! Siparişiniz ({orderId}) kaydedildi ve artık bağlayıcıdır. Teslimat mı, mağazadan teslim mi? (T/M)",
		Kurdish: "Spas! Sifarişa we ({orderId}) hat tomarkirin û niha girêdayî ye. Gihandin an wergirtin? (G/W)",
		Polish:  "Dziękujemy! Twoje zamówienie ({orderId}) zostało zapisane i jest teraz wiążące. Dostawa czy odbiór? (D/O)",
	},

	KeyDeliveryOrPickup: {
		German:  "Möchten Sie das Teil geliefert bekommen oder selbst abholen? Antworten Sie mit L (Lieferung) oder A (Abholung).",
		English: "Would you like the part delivered or will you pick it up? Reply D (delivery) or P (pickup).",
		Turkish: "Parça teslim mi edilsin yoksa kendiniz mi alacaksınız? T (teslimat) veya M (mağaza) yazın.",
		Kurdish: "Perçe bê gihandin an hûn ê bi xwe werbigirin? G (gihandin) an W (wergirtin) binivîsin.",
		Polish:  "Czy część ma być dostarczona, czy odbierzesz ją osobiście? Odpowiedz D (dostawa) lub O (odbiór).",
	},

	KeyAskAddress: {
		German:  "An welche Adresse sollen wir liefern? Bitte Straße, Hausnummer, PLZ und Ort angeben.",
		English: "Which address should we deliver to? Please include street, number, postal code and city.",
		Turkish: "Hangi adrese teslim edelim? Lütfen sokak, numara, posta kodu ve şehir yazın.",
		Kurdish: "Em bigihînin kîjan navnîşanê? Ji kerema xwe kolan, hejmar, koda postê û bajar binivîsin.",
		Polish:  "Na jaki adres mamy dostarczyć? Podaj ulicę, numer, kod pocztowy i miasto.",
	},

	KeyAddressInvalid: {
		German:  "Das sieht nicht nach einer vollständigen Adresse aus. Bitte geben Sie Straße, Hausnummer, PLZ und Ort an.",
		English: "That doesn't look like a complete address. Please provide street, number, postal code and city.",
		Turkish: "Bu tam bir adres gibi görünmüyor. Lütfen sokak, numara, posta kodu ve şehir yazın.",
		Kurdish: "Ev ne wekî navnîşanek temam xuya dike. Ji kerema xwe kolan, hejmar, koda postê û bajar binivîsin.",
		Polish:  "To nie wygląda na pełny adres. Podaj ulicę, numer, kod pocztowy i miasto.",
	},

	KeyAddressSaved: {
		German:  "✅ Adresse gespeichert! Ihre Bestellung ({orderId}) ist abgeschlossen. Ihr Händler wird Sie bald kontaktieren.",
		English: "✅ Address saved! Your order ({orderId}) is complete. Your dealer will contact you soon.",
		Turkish: "✅ Adres kaydedildi! Siparişiniz ({orderId}) tamamlandı. Satıcınız yakında sizinle iletişime geçecek.",
		Kurdish: "✅ Navnîşan hat tomarkirin! Sifarişa we ({orderId}) qediya. Firoşkarê we dê di demek nêzîk de bi we re têkilî daynin.",
		Polish:  "✅ Adres zapisany! Twoje zamówienie ({orderId}) jest gotowe. Sprzedawca wkrótce się z Tobą skontaktuje.",
	},

	KeyPickupLocation: {
		German:  "✅ Alles klar! Sie können das Teil hier abholen: {location}. Ihre Bestellung ({orderId}) ist abgeschlossen.",
		English: "✅ Great! You can pick up the part here: {location}. Your order ({orderId}) is complete.",
		Turkish: "✅ Harika! Parçayı buradan alabilirsiniz: {location}. Siparişiniz ({orderId}) tamamlandı.",
		Kurdish: "✅ Baş e! Hûn dikarin perçeyê li vir werbigirin: {location}. Sifarişa we ({orderId}) qediya.",
		Polish:  "✅ Świetnie! Część możesz odebrać tutaj: {location}. Twoje zamówienie ({orderId}) jest gotowe.",
	},

	KeyOrderComplete: {
		German:  "Ihre Bestellung ist abgeschlossen. Ihr Händler wird Sie bald kontaktieren. Kann ich sonst noch etwas für Sie tun?",
		English: "Your order is complete. Your dealer will contact you soon. Is there anything else I can do for you?",
		Turkish: "Siparişiniz tamamlandı. Satıcınız yakında sizinle iletişime geçecek. Başka bir konuda yardımcı olabilir miyim?",
		Kurdish: "Sifarişa we qediya. Firoşkarê we dê di demek nêzîk de bi we re têkilî daynin. Tiştekî din heye ku ez bikim?",
		Polish:  "Twoje zamówienie jest gotowe. Sprzedawca wkrótce się z Tobą skontaktuje. Czy mogę jeszcze w czymś pomóc?",
	},

	KeyNeedsHuman: {
		German:  "Ich konnte das leider nicht automatisch klären. Ich leite Ihre Anfrage an einen Kollegen weiter – Sie werden in Kürze kontaktiert.",
		English: "I couldn't resolve this automatically. I'm forwarding your request to a colleague – you'll be contacted shortly.",
		Turkish: "Bunu otomatik olarak çözemedim. Talebinizi bir çalışma arkadaşıma iletiyorum – kısa süre içinde sizinle iletişime geçilecek.",
		Kurdish: "Min nekarî vê bixweber çareser bikim. Ez daxwaziya we ji hevkarekî re dişînim – dê di demek kurt de bi we re têkilî bê danîn.",
		Polish:  "Nie udało mi się rozwiązać tego automatycznie. Przekazuję Twoje zapytanie do współpracownika – wkrótce się z Tobą skontaktujemy.",
	},

	KeyHandoffFollowUp: {
		German:  "Ihre Anfrage liegt bereits bei einem Kollegen. Sie werden so schnell wie möglich kontaktiert.",
		English: "Your request is already with a colleague. You'll be contacted as soon as possible.",
		Turkish: "Talebiniz zaten bir çalışma arkadaşımızda. En kısa sürede sizinle iletişime geçilecek.",
		Kurdish: "Daxwaziya we jixwe li cem hevkarekî ye. Dê bi lez bi we re têkilî bê danîn.",
		Polish:  "Twoje zapytanie jest już u współpracownika. Skontaktujemy się z Tobą jak najszybciej.",
	},

	KeyCancelled: {
		German:  "Ihre Anfrage wurde abgebrochen. Wenn Sie später wieder ein Teil benötigen, schreiben Sie mir einfach.",
		English: "Your request has been cancelled. If you need a part again later, just message me.",
		Turkish: "Talebiniz iptal edildi. Daha sonra tekrar bir parçaya ihtiyacınız olursa bana yazmanız yeterli.",
		Kurdish: "Daxwaziya we hat betalkirin. Ger paşê dîsa perçeyek hewce be, tenê ji min re binivîsin.",
		Polish:  "Twoje zapytanie zostało anulowane. Jeśli później znów będziesz potrzebować części, po prostu napisz.",
	},

	KeyFreshStart: {
		German:  "Alles klar, wir fangen neu an! 📸 Schicken Sie mir bitte ein Foto des Fahrzeugscheins oder die VIN des neuen Fahrzeugs.",
		English: "Alright, let's start fresh! 📸 Please send a photo of the registration document or the VIN of the new vehicle.",
		Turkish: "Tamam, baştan başlayalım! 📸 Lütfen yeni aracın ruhsat fotoğrafını veya VIN bilgisini gönderin.",
		Kurdish: "Baş e, em ji nû ve dest pê bikin! 📸 Ji kerema xwe wêneya belgeyê an VIN-a wesayîta nû bişînin.",
		Polish:  "Dobrze, zaczynamy od nowa! 📸 Wyślij zdjęcie dowodu rejestracyjnego lub VIN nowego pojazdu.",
	},

	KeyFollowUpPart: {
		German:  "Gerne! Für Ihren {make} {model} – welches Teil benötigen Sie noch?",
		English: "Sure! For your {make} {model} – which other part do you need?",
		Turkish: "Tabii! {make} {model} aracınız için – başka hangi parçaya ihtiyacınız var?",
		Kurdish: "Bi dilxweşî! Ji bo {make} {model} ya we – kîjan perçeya din hewce ye?",
		Polish:  "Jasne! Do Twojego {make} {model} – jakiej jeszcze części potrzebujesz?",
	},

	KeyGoodbye: {
		German:  "Vielen Dank und bis bald! 👋",
		English: "Thank you and see you soon! 👋",
		Turkish: "Teşekkürler, görüşmek üzere! 👋",
		Kurdish: "Spas û bi xatirê te! 👋",
		Polish:  "Dziękujemy i do zobaczenia! 👋",
	},

	KeyAbuseWarning: {
		German:  "Bitte bleiben Sie sachlich, damit ich Ihnen weiterhelfen kann.",
		English: "Please keep it civil so I can keep helping you.",
		Turkish: "Size yardımcı olmaya devam edebilmem için lütfen nazik kalın.",
		Kurdish: "Ji kerema xwe bi rêzdarî bimînin da ku ez karibim alîkariya we bikim.",
		Polish:  "Proszę zachować kulturę, abym mógł dalej pomagać.",
	},

	KeyNotAvailable: {
		German:  "k.A.",
		English: "n/a",
		Turkish: "bilgi yok",
		Kurdish: "nayê zanîn",
		Polish:  "brak danych",
	},

	KeyFallback: {
		German:  "Das habe ich leider nicht verstanden. Können Sie es anders formulieren?",
		English: "Sorry, I didn't understand that. Could you phrase it differently?",
		Turkish: "Üzgünüm, bunu anlayamadım. Farklı şekilde ifade edebilir misiniz?",
		Kurdish: "Bibore, min ew fêm nekir. Hûn dikarin bi awayekî din bibêjin?",
		Polish:  "Przepraszam, nie zrozumiałem. Czy możesz to inaczej sformułować?",
	},
}
