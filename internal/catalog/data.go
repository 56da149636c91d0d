package catalog

// Average packed volumes in cubic meters, including disassembled frames
// and wrapping allowance.
var items = []InventoryItem{
	{ItemName: "Single Bed", Category: "Bedroom", AverageVolumeM3: 1.0},
	{ItemName: "Double Bed", Category: "Bedroom", AverageVolumeM3: 1.5},
	{ItemName: "King Size Bed", Category: "Bedroom", AverageVolumeM3: 1.8},
	{ItemName: "Bunk Bed", Category: "Bedroom", AverageVolumeM3: 1.6},
	{ItemName: "Cot", Category: "Bedroom", AverageVolumeM3: 0.6},
	{ItemName: "Wardrobe", Category: "Bedroom", AverageVolumeM3: 1.2},
	{ItemName: "Chest of Drawers", Category: "Bedroom", AverageVolumeM3: 0.7},
	{ItemName: "Bedside Table", Category: "Bedroom", AverageVolumeM3: 0.2},
	{ItemName: "Dressing Table", Category: "Bedroom", AverageVolumeM3: 0.6},
	{ItemName: "Mirror", Category: "Bedroom", AverageVolumeM3: 0.1},

	{ItemName: "Two Seater Sofa", Category: "Living Room", AverageVolumeM3: 1.4},
	{ItemName: "Three Seater Sofa", Category: "Living Room", AverageVolumeM3: 1.8},
	{ItemName: "Corner Sofa", Category: "Living Room", AverageVolumeM3: 2.5},
	{ItemName: "Armchair", Category: "Living Room", AverageVolumeM3: 0.8},
	{ItemName: "Coffee Table", Category: "Living Room", AverageVolumeM3: 0.4},
	{ItemName: "TV Stand", Category: "Living Room", AverageVolumeM3: 0.4},
	{ItemName: "Television", Category: "Living Room", AverageVolumeM3: 0.3},
	{ItemName: "Bookcase", Category: "Living Room", AverageVolumeM3: 0.8},
	{ItemName: "Display Cabinet", Category: "Living Room", AverageVolumeM3: 0.9},
	{ItemName: "Rug", Category: "Living Room", AverageVolumeM3: 0.2},

	{ItemName: "Dining Table", Category: "Dining Room", AverageVolumeM3: 1.0},
	{ItemName: "Dining Chair", Category: "Dining Room", AverageVolumeM3: 0.3},
	{ItemName: "Sideboard", Category: "Dining Room", AverageVolumeM3: 0.9},
	{ItemName: "Drinks Cabinet", Category: "Dining Room", AverageVolumeM3: 0.7},

	{ItemName: "Fridge Freezer", Category: "Kitchen", AverageVolumeM3: 1.0},
	{ItemName: "Washing Machine", Category: "Kitchen", AverageVolumeM3: 0.6},
	{ItemName: "Tumble Dryer", Category: "Kitchen", AverageVolumeM3: 0.6},
	{ItemName: "Dishwasher", Category: "Kitchen", AverageVolumeM3: 0.6},
	{ItemName: "Cooker", Category: "Kitchen", AverageVolumeM3: 0.6},
	{ItemName: "Microwave", Category: "Kitchen", AverageVolumeM3: 0.1},
	{ItemName: "Kitchen Table", Category: "Kitchen", AverageVolumeM3: 0.8},

	{ItemName: "Desk", Category: "Office", AverageVolumeM3: 0.8},
	{ItemName: "Office Chair", Category: "Office", AverageVolumeM3: 0.4},
	{ItemName: "Filing Cabinet", Category: "Office", AverageVolumeM3: 0.5},
	{ItemName: "Workstation", Category: "Office", AverageVolumeM3: 1.2},

	{ItemName: "Lawn Mower", Category: "Garden", AverageVolumeM3: 0.5},
	{ItemName: "Garden Table", Category: "Garden", AverageVolumeM3: 0.8},
	{ItemName: "Garden Chair", Category: "Garden", AverageVolumeM3: 0.3},
	{ItemName: "BBQ", Category: "Garden", AverageVolumeM3: 0.5},
	{ItemName: "Bicycle", Category: "Garden", AverageVolumeM3: 0.5},

	{ItemName: "Small Box", Category: "Boxes", AverageVolumeM3: 0.06},
	{ItemName: "Medium Box", Category: "Boxes", AverageVolumeM3: 0.09},
	{ItemName: "Large Box", Category: "Boxes", AverageVolumeM3: 0.12},
	{ItemName: "Wardrobe Box", Category: "Boxes", AverageVolumeM3: 0.25},
	{ItemName: "Suitcase", Category: "Boxes", AverageVolumeM3: 0.1},
	{ItemName: "Piano", Category: "Specialist", AverageVolumeM3: 2.0},
	{ItemName: "Pool Table", Category: "Specialist", AverageVolumeM3: 2.2},
	{ItemName: "Safe", Category: "Specialist", AverageVolumeM3: 0.4},
}
