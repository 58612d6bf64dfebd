package models

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }

// DefaultDocument returns the compiled-in content document. It serves two
// roles: the fallback when the store is unreachable, empty, or malformed,
// and the seed for a fresh editing session or database. Every field is
// populated so the public site always has a complete document to render.
func DefaultDocument() ContentDocument {
	return ContentDocument{
		Version: SchemaVersion,

		HeroTitle:    "Masak Lebih Baik, Hidup Lebih Enak",
		HeroSubtitle: "Belajar teknik dapur profesional langsung dari Chef Anton — workshop tatap muka, kelas video, dan konsultasi bisnis kuliner.",
		HeroImage:    "/images/hero-kitchen.jpg",

		CTAWorkshop: CallToAction{
			Title:       "Workshop Live",
			Description: "Sesi memasak tatap muka dengan kelompok kecil, langsung praktik di dapur.",
		},
		CTAClass: CallToAction{
			Title:       "Kelas Rekaman",
			Description: "Video pembelajaran yang bisa ditonton kapan saja, selamanya.",
		},
		CTAConsulting: CallToAction{
			Title:       "Konsultasi Bisnis",
			Description: "Pendampingan menu, dapur, dan operasional untuk usaha kuliner Anda.",
		},

		AboutName:  "Chef Anton Wijaya",
		AboutTitle: "Executive Chef & Culinary Consultant",
		AboutBio:   "Lebih dari 15 tahun di dapur hotel bintang lima dan restoran fine dining di Jakarta, Bali, dan Singapura. Kini fokus berbagi ilmu lewat workshop, kelas online, dan pendampingan bisnis kuliner.",
		AboutQuote: "Masakan enak bukan soal resep rahasia, tapi soal teknik yang benar dan bahan yang dihormati.",
		AboutPhoto: "/images/chef-anton.jpg",

		Workshops: []Workshop{
			{
				ID:            "ws-saus-dasar",
				Title:         "Lima Saus Induk Klasik",
				Description:   "Kuasai béchamel, velouté, espagnole, hollandaise, dan tomat — fondasi semua saus turunan.",
				Price:         850000,
				OriginalPrice: int64Ptr(1000000),
				Location:      "Dapur Studio, Kemang, Jakarta Selatan",
				Image:         "/images/workshop-saus.jpg",
				Duration:      "4 jam",
				Capacity:      12,
				Level:         "Menengah",
				Date:          "2026-10-17T09:00",
				DisplayDate:   "Sabtu, 17 Oktober 2026",
				Curriculum: []string{
					"Roux dan teknik pengentalan",
					"Emulsi panas: hollandaise tanpa pecah",
					"Stok sebagai dasar rasa",
					"Plating dan saus turunan",
				},
			},
			{
				ID:          "ws-pisau",
				Title:       "Teknik Pisau Profesional",
				Description: "Dari cara memegang pisau sampai potongan julienne, brunoise, dan chiffonade yang konsisten.",
				Price:       650000,
				Location:    "Dapur Studio, Kemang, Jakarta Selatan",
				Image:       "/images/workshop-pisau.jpg",
				Duration:    "3 jam",
				Capacity:    16,
				Level:       "Pemula",
				Date:        "2026-11-07T13:00",
				Curriculum: []string{
					"Anatomi dan perawatan pisau",
					"Potongan dasar sayuran",
					"Fillet ikan dan potong ayam",
				},
			},
			{
				ID:             "ws-fermentasi-2024",
				Title:          "Fermentasi Nusantara",
				Description:    "Tempe, tape, dan acar — teknik fermentasi tradisional dengan pendekatan dapur modern.",
				Price:          750000,
				Location:       "Dapur Studio, Kemang, Jakarta Selatan",
				Image:          "/images/workshop-fermentasi.jpg",
				Duration:       "5 jam",
				Capacity:       12,
				Level:          "Menengah",
				Date:           "2024-08-10T09:00",
				DisplayDate:    "Agustus 2024",
				IsHistorical:   true,
				RealAttendance: intPtr(14),
			},
		},

		RecordedClasses: []RecordedClass{
			{
				ID:          "rc-dasar-dapur",
				Title:       "Dasar-Dasar Dapur Profesional",
				Description: "Sembilan modul video: mise en place, kontrol panas, seasoning, dan manajemen waktu masak.",
				Price:       299000,
				Image:       "/images/kelas-dasar.jpg",
				Duration:    "6 jam video",
				Level:       "Pemula",
				SoldCount:   1240,
			},
			{
				ID:          "rc-pastry",
				Title:       "Pastry Rumahan Rasa Hotel",
				Description: "Croissant, choux, dan tart dengan peralatan dapur rumah biasa.",
				Price:       349000,
				Image:       "/images/kelas-pastry.jpg",
				Duration:    "8 jam video",
				Level:       "Menengah",
				SoldCount:   860,
			},
			{
				ID:          "rc-nasi-goreng",
				Title:       "Nasi Goreng Restoran",
				Description: "Satu hidangan, dibedah tuntas: wok hei, tekstur nasi, dan lima variasi klasik.",
				Price:       149000,
				Image:       "/images/kelas-nasgor.jpg",
				Duration:    "2 jam video",
				Level:       "Pemula",
				SoldCount:   2310,
			},
		},

		Portfolio: []PortfolioItem{
			{ID: "pf-gala", Title: "Gala Dinner 400 Tamu — Hotel Mulia", Category: "Event", Image: "/images/porto-gala.jpg"},
			{ID: "pf-menu-warung", Title: "Revamp Menu Warung Kopi Senja", Category: "Konsultasi", Image: "/images/porto-warung.jpg"},
			{ID: "pf-tv", Title: "Juri Tamu — Dapur Juara TV", Category: "Media", Image: "/images/porto-tv.jpg"},
			{ID: "pf-catering", Title: "Standarisasi Dapur Catering Sehat", Category: "Konsultasi", Image: "/images/porto-catering.jpg"},
		},

		Reviews: []Review{
			{
				ID:       "rv-sinta",
				Name:     "Sinta Dewi",
				Role:     "Pemilik Kafe",
				Comment:  "Workshop saus induk mengubah cara saya menyusun menu. Ilmunya langsung kepakai.",
				Avatar:   "/images/avatar-sinta.jpg",
				Category: CategoryWorkshop,
			},
			{
				ID:       "rv-budi",
				Name:     "Budi Santoso",
				Role:     "Karyawan, hobi masak",
				Comment:  "Kelas rekamannya jelas banget, bisa diulang-ulang sampai paham. Worth it.",
				Avatar:   "/images/avatar-budi.jpg",
				Category: CategoryClass,
			},
			{
				ID:       "rv-maya",
				Name:     "Maya Kusuma",
				Role:     "Founder Catering Sehat",
				Comment:  "Konsultasi tiga bulan dengan Chef Anton menaikkan margin dapur kami 18 persen.",
				Avatar:   "/images/avatar-maya.jpg",
				Category: CategoryConsulting,
			},
		},

		Partners: []Partner{
			{ID: "pt-mulia", Name: "Hotel Mulia", Logo: "/images/logo-mulia.png"},
			{ID: "pt-dapurjuara", Name: "Dapur Juara TV", Logo: "📺"},
			{ID: "pt-pasarsegar", Name: "Pasar Segar", Logo: "🥬"},
			{ID: "pt-kulinakota", Name: "Kulina Kota", Logo: "/images/logo-kulina.png"},
		},

		FooterEducation: LinkGroup{
			Title: "Belajar",
			Links: []NavLink{
				{ID: "fe-workshop", Label: "Workshop", Href: "#workshop"},
				{ID: "fe-kelas", Label: "Kelas Rekaman", Href: "#kelas"},
				{ID: "fe-porto", Label: "Portofolio", Href: "#portofolio"},
			},
		},
		FooterB2B: LinkGroup{
			Title: "Untuk Bisnis",
			Links: []NavLink{
				{ID: "fb-konsultasi", Label: "Konsultasi Kuliner", Href: "#konsultasi"},
				{ID: "fb-event", Label: "Private Event", Href: "#event"},
				{ID: "fb-kontak", Label: "Hubungi Kami", Href: "#kontak"},
			},
		},
	}
}
