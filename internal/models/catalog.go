package models

// LandReportTypes - фиксированный набор категорий стандартного профиля
var LandReportTypes = []ReportType{
	ReportTypeFlood,
	ReportTypeTrafficJam,
	ReportTypeCrime,
	ReportTypeRoadDamage,
	ReportTypeBrokenLight,
}

// SeaReportTypes - категории для точек севернее береговой линии
var SeaReportTypes = []ReportType{
	ReportTypeTidalFlood,
	ReportTypeLeveeBreach,
	ReportTypeShipwreck,
}

// Descriptions - описания по категориям, описание выбирается из списка своей категории
var Descriptions = map[ReportType][]string{
	ReportTypeFlood: {
		"Knee-deep flooding",
		"Water pooling quite high",
		"Small flash flood",
		"Road submerged",
	},
	ReportTypeTrafficJam: {
		"Total gridlock, not moving",
		"Bumper-to-bumper crawl",
		"Accident causing a jam",
		"Traffic light out causing a jam",
	},
	ReportTypeCrime: {
		"Motorcycle theft",
		"Street robbery at night",
		"Car window smashed",
		"Pickpocket on the minibus",
	},
	ReportTypeRoadDamage: {
		"Large pothole in the middle of the road",
		"Asphalt peeling off",
		"Badly uneven road",
		"Road caved in",
	},
	ReportTypeBrokenLight: {
		"Street lights completely out",
		"Street light flickering",
		"Pitch dark, prone to crime",
		"Lamp post knocked down",
	},
	ReportTypeTidalFlood: {
		"High tide flooding the coast",
		"Sea water seeping through the levee",
		"Coastal road submerged",
		"Sea water entering homes",
	},
	ReportTypeLeveeBreach: {
		"Sea wall breached",
		"Water overflowing the levee",
		"Large crack in the levee",
		"Levee close to collapse",
	},
	ReportTypeShipwreck: {
		"Fishing boat sank",
		"Cargo ship listing",
		"Tourist boat capsized",
		"Wreck blocking the channel",
	},
}

// IsLandType сообщает, входит ли категория в стандартный набор
func IsLandType(t ReportType) bool {
	for _, lt := range LandReportTypes {
		if lt == t {
			return true
		}
	}
	return false
}
