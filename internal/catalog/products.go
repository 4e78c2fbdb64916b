package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/vulcantech/smartstock/internal/entity"
)

func price(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// productDefinitions returns the 41-item VulcanTech product master.
func productDefinitions() []entity.Product {
	return []entity.Product{
		// Motors & drive systems
		{Name: "E-Motor 250W Mid-Drive", Description: "Bosch Performance Line CX motor for mountain e-bikes", SKU: "MTR-250-MD-01", Price: price("450.00"), Unit: "piece", Category: entity.CategoryMotors, ReorderLevel: 15},
		{Name: "E-Motor 500W Hub", Description: "Rear hub motor for city e-bikes, 500W continuous power", SKU: "MTR-500-HB-01", Price: price("380.00"), Unit: "piece", Category: entity.CategoryMotors, ReorderLevel: 20},
		{Name: "E-Motor 750W Performance", Description: "High-performance mid-drive motor for cargo bikes", SKU: "MTR-750-PF-01", Price: price("680.00"), Unit: "piece", Category: entity.CategoryMotors, ReorderLevel: 10},
		{Name: "Motor Controller Unit", Description: "Smart controller with regenerative braking support", SKU: "CTR-MCU-01", Price: price("125.00"), Unit: "piece", Category: entity.CategoryMotors, ReorderLevel: 25},

		// Batteries
		{Name: "Battery 48V 14Ah", Description: "Lithium-ion battery pack, 672Wh capacity", SKU: "BAT-48-14-01", Price: price("420.00"), Unit: "piece", Category: entity.CategoryBatteries, ReorderLevel: 30},
		{Name: "Battery 36V 10Ah", Description: "Compact battery for city bikes, 360Wh", SKU: "BAT-36-10-01", Price: price("280.00"), Unit: "piece", Category: entity.CategoryBatteries, ReorderLevel: 40},
		{Name: "Battery 52V 20Ah", Description: "Extended range battery, 1040Wh for cargo bikes", SKU: "BAT-52-20-01", Price: price("650.00"), Unit: "piece", Category: entity.CategoryBatteries, ReorderLevel: 15},
		{Name: "Battery Management System", Description: "BMS for battery protection and monitoring", SKU: "BAT-BMS-01", Price: price("45.00"), Unit: "piece", Category: entity.CategoryBatteries, ReorderLevel: 50},
		{Name: "Battery Charger 4A", Description: "Fast charger compatible with all battery models", SKU: "BAT-CHG-4A", Price: price("85.00"), Unit: "piece", Category: entity.CategoryBatteries, ReorderLevel: 35},

		// Frames
		{Name: "Carbon Frame MTB", Description: "Full suspension carbon frame for mountain e-bikes", SKU: "FRM-CBN-MTB-01", Price: price("1200.00"), Unit: "piece", Category: entity.CategoryFrames, ReorderLevel: 8},
		{Name: "Aluminum Frame City", Description: "Step-through aluminum frame for urban bikes", SKU: "FRM-ALU-CTY-01", Price: price("380.00"), Unit: "piece", Category: entity.CategoryFrames, ReorderLevel: 20},
		{Name: "Aluminum Frame Cargo", Description: "Reinforced frame for cargo e-bikes", SKU: "FRM-ALU-CRG-01", Price: price("520.00"), Unit: "piece", Category: entity.CategoryFrames, ReorderLevel: 12},
		{Name: "Steel Frame Classic", Description: "Classic steel frame for vintage-style e-bikes", SKU: "FRM-STL-CLS-01", Price: price("320.00"), Unit: "piece", Category: entity.CategoryFrames, ReorderLevel: 15},

		// Wheels & tires
		{Name: "Wheel Set 29\" MTB", Description: "Tubeless-ready wheelset for mountain bikes", SKU: "WHL-29-MTB-01", Price: price("320.00"), Unit: "set", Category: entity.CategoryWheels, ReorderLevel: 25},
		{Name: "Wheel Set 28\" City", Description: "City bike wheels with puncture protection", SKU: "WHL-28-CTY-01", Price: price("180.00"), Unit: "set", Category: entity.CategoryWheels, ReorderLevel: 35},
		{Name: "Wheel Set 20\" Cargo", Description: "Heavy-duty wheels for cargo bikes", SKU: "WHL-20-CRG-01", Price: price("240.00"), Unit: "set", Category: entity.CategoryWheels, ReorderLevel: 20},
		{Name: "Tire 29x2.4 MTB", Description: "All-terrain tire for mountain bikes", SKU: "TIR-29-24-MTB", Price: price("55.00"), Unit: "piece", Category: entity.CategoryWheels, ReorderLevel: 60},
		{Name: "Tire 28x1.75 City", Description: "City tire with reflective sidewalls", SKU: "TIR-28-175-CTY", Price: price("32.00"), Unit: "piece", Category: entity.CategoryWheels, ReorderLevel: 80},

		// Brakes
		{Name: "Hydraulic Disc Brake Set", Description: "Shimano 4-piston hydraulic disc brakes", SKU: "BRK-HYD-4P-01", Price: price("220.00"), Unit: "set", Category: entity.CategoryBrakes, ReorderLevel: 30},
		{Name: "Mechanical Disc Brake Set", Description: "Cable-actuated disc brakes for city bikes", SKU: "BRK-MEC-DS-01", Price: price("85.00"), Unit: "set", Category: entity.CategoryBrakes, ReorderLevel: 40},
		{Name: "Brake Rotor 180mm", Description: "Stainless steel brake rotor", SKU: "BRK-RTR-180", Price: price("28.00"), Unit: "piece", Category: entity.CategoryBrakes, ReorderLevel: 100},
		{Name: "Brake Pads Set", Description: "High-performance brake pads", SKU: "BRK-PAD-HP-01", Price: price("18.00"), Unit: "set", Category: entity.CategoryBrakes, ReorderLevel: 120},

		// Display & controls
		{Name: "LCD Display 3.5\"", Description: "Color LCD display with GPS and connectivity", SKU: "DSP-LCD-35-01", Price: price("145.00"), Unit: "piece", Category: entity.CategoryElectronics, ReorderLevel: 35},
		{Name: "LED Display Basic", Description: "Basic LED display showing speed and battery", SKU: "DSP-LED-BS-01", Price: price("45.00"), Unit: "piece", Category: entity.CategoryElectronics, ReorderLevel: 50},
		{Name: "Thumb Throttle", Description: "Variable speed thumb throttle", SKU: "CTL-THR-TB-01", Price: price("22.00"), Unit: "piece", Category: entity.CategoryElectronics, ReorderLevel: 60},
		{Name: "Pedal Assist Sensor", Description: "Cadence sensor for pedal assist", SKU: "CTL-PAS-01", Price: price("35.00"), Unit: "piece", Category: entity.CategoryElectronics, ReorderLevel: 70},
		{Name: "Torque Sensor", Description: "Bottom bracket torque sensor", SKU: "CTL-TRQ-BB-01", Price: price("125.00"), Unit: "piece", Category: entity.CategoryElectronics, ReorderLevel: 25},

		// Drivetrain
		{Name: "Derailleur 11-Speed", Description: "Shimano XT 11-speed rear derailleur", SKU: "DRV-DER-11S-01", Price: price("185.00"), Unit: "piece", Category: entity.CategoryDrivetrain, ReorderLevel: 20},
		{Name: "Chain 11-Speed", Description: "E-bike specific reinforced chain", SKU: "DRV-CHN-11S-01", Price: price("42.00"), Unit: "piece", Category: entity.CategoryDrivetrain, ReorderLevel: 50},
		{Name: "Cassette 11-50T", Description: "11-speed cassette with wide range", SKU: "DRV-CAS-1150-01", Price: price("125.00"), Unit: "piece", Category: entity.CategoryDrivetrain, ReorderLevel: 30},
		{Name: "Crankset 170mm", Description: "Forged aluminum crankset with chainring", SKU: "DRV-CRK-170-01", Price: price("95.00"), Unit: "piece", Category: entity.CategoryDrivetrain, ReorderLevel: 35},

		// Accessories & small parts
		{Name: "Handlebar Aluminum", Description: "Wide aluminum handlebar 720mm", SKU: "ACC-HBR-720-01", Price: price("45.00"), Unit: "piece", Category: entity.CategoryAccessories, ReorderLevel: 40},
		{Name: "Seatpost 31.6mm", Description: "Aluminum seatpost with quick release", SKU: "ACC-SPT-316-01", Price: price("28.00"), Unit: "piece", Category: entity.CategoryAccessories, ReorderLevel: 45},
		{Name: "Saddle Comfort Plus", Description: "Ergonomic saddle with gel padding", SKU: "ACC-SDL-CP-01", Price: price("52.00"), Unit: "piece", Category: entity.CategoryAccessories, ReorderLevel: 35},
		{Name: "Pedals Platform", Description: "Wide platform pedals with pins", SKU: "ACC-PDL-PLT-01", Price: price("35.00"), Unit: "pair", Category: entity.CategoryAccessories, ReorderLevel: 50},
		{Name: "Grips Ergonomic", Description: "Lock-on ergonomic grips", SKU: "ACC-GRP-ERG-01", Price: price("18.00"), Unit: "pair", Category: entity.CategoryAccessories, ReorderLevel: 80},
		{Name: "LED Light Set", Description: "Front and rear LED lights with USB charging", SKU: "ACC-LGT-SET-01", Price: price("48.00"), Unit: "set", Category: entity.CategoryAccessories, ReorderLevel: 45},
		{Name: "Kickstand Heavy Duty", Description: "Adjustable center kickstand", SKU: "ACC-KST-HD-01", Price: price("22.00"), Unit: "piece", Category: entity.CategoryAccessories, ReorderLevel: 60},
		{Name: "Cable Set Complete", Description: "Brake and shift cables kit", SKU: "ACC-CBL-KIT-01", Price: price("15.00"), Unit: "kit", Category: entity.CategoryAccessories, ReorderLevel: 100},
		{Name: "Bolt Kit Frame", Description: "Complete bolt kit for frame assembly", SKU: "ACC-BLT-FRM-01", Price: price("8.50"), Unit: "kit", Category: entity.CategoryAccessories, ReorderLevel: 150},
		{Name: "Wire Harness Main", Description: "Main electrical wiring harness", SKU: "ACC-WRH-MN-01", Price: price("38.00"), Unit: "piece", Category: entity.CategoryElectronics, ReorderLevel: 55},
	}
}
