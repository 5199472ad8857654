package dino

// sampleRecords returns a small dataset shaped like the published dinosaur
// facts export. Each call returns a fresh copy.
func sampleRecords() []Record {
	return []Record{
		{
			DinosaurID:     "YLtkN9R37",
			Name:           "Allosaurus",
			Pronunciation:  "AL-oh-sore-us",
			LengthInMeters: 12,
			Info:           "Allosaurus was a large carnivore with a heavy skull.",
			Period:         "Late Jurassic",
			Mya:            []int64{155, 150},
		},
		{
			DinosaurID:     "GGvO1X9Zeh",
			Name:           "Stegosaurus",
			Pronunciation:  "STEG-oh-SORE-us",
			LengthInMeters: 9,
			Info:           "Stegosaurus had two rows of plates along its back.",
			Period:         "Late Jurassic",
			Mya:            []int64{150},
		},
		{
			DinosaurID:     "BFjjLjea-O",
			Name:           "Camptosaurus",
			Pronunciation:  "KAMP-toh-SORE-us",
			LengthInMeters: 7.9,
			Info:           "Camptosaurus was a bulky plant-eater.",
			Period:         "Late Jurassic",
			Mya:            []int64{151},
		},
		{
			DinosaurID:     "V53DvdhV2A",
			Name:           "Brachiosaurus",
			Pronunciation:  "BRACK-ee-oh-SORE-us",
			LengthInMeters: 30,
			Info:           "Brachiosaurus had front legs longer than its back legs.",
			Period:         "Late Jurassic",
			Mya:            []int64{156, 150},
		},
		{
			DinosaurID:     "WHQcpcOj0G",
			Name:           "Dracorex",
			Pronunciation:  "DRAY-ko-rex",
			LengthInMeters: 3,
			Info:           "Dracorex had a flat skull covered in spikes and bumps.",
			Period:         "Late Cretaceous",
			Mya:            []int64{66},
		},
		{
			DinosaurID:     "U9vuZmgKwUr",
			Name:           "Xenoceratops",
			Pronunciation:  "ZEE-no-SEH-ruh-tops",
			LengthInMeters: 6,
			Info:           "Xenoceratops had horns and a bony frill with elaborate ornamentation of projections, knobs, and spikes.",
			Period:         "Early Cretaceous",
			Mya:            []int64{77, 75},
		},
		{
			DinosaurID:     "HvOlYecwsN",
			Name:           "Tyrannosaurus",
			Pronunciation:  "tie-RAN-uh-SORE-us",
			LengthInMeters: 12.3,
			Info:           "Tyrannosaurus was one of the largest land predators.",
			Period:         "Late Cretaceous",
			Mya:            []int64{68, 66},
		},
	}
}
