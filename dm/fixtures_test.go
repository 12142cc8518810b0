package dm

// Errors of two competing methods: 100 draws each from U(0, 1).
var uniformErrors1 = []float64{
	0.09794476488692494, 0.6582974173661611, 0.3900328842581936, 0.6153666150144987,
	0.8954831775883282, 0.45046147784860335, 0.03386798929147938, 0.3761366819728096,
	0.63007709437952, 0.1517791497399934, 0.9940909961727764, 0.5155558761306255,
	0.5338314636244615, 0.45901361328873413, 0.9838831324256054, 0.14196723078432494,
	0.8515850581322154, 0.011701881589863738, 0.9893090458277993, 0.6750725224342095,
	0.8676649824792564, 0.8313234095241191, 0.9723177880738977, 0.8670320565204968,
	0.16354784130826716, 0.7706214214729946, 0.5172807392573735, 0.5302414469287473,
	0.9219381157736046, 0.17617512204904628, 0.030043831647510344, 0.1402569996383779,
	0.4943072847673776, 0.8827867698058439, 0.6331278150719509, 0.7059360256548554,
	0.9476111938644468, 0.8155168638302622, 0.01560630153552367, 0.3020051647059302,
	0.04711940182630503, 0.9943943867402799, 0.7363912932921749, 0.36967950527856897,
	0.6312178210262859, 0.6691955195211249, 0.72104250717673, 0.1548719578676614,
	0.6083122928982434, 0.022030687013358863, 0.8230615764376473, 0.5541815769128062,
	0.6439178517585753, 0.5493337365093051, 0.14488933862814313, 0.4173003985217264,
	0.7304711912244398, 0.14390674694428707, 0.9463761264119096, 0.9084582234741797,
	0.45834424956965436, 0.36655890729068186, 0.29379233094490886, 0.6215502746329042,
	0.5528453943494784, 0.12601810234063637, 0.7341095194063431, 0.6780662369285545,
	0.6079161846086877, 0.3557792421002518, 0.7042200992252288, 0.11664451745889004,
	0.8538567212508849, 0.6755462926062552, 0.049810502792337785, 0.40927210262823177,
	0.6604059581983392, 0.8156151511735962, 0.739999106577988, 0.186935202546763,
	0.03480129863385939, 0.9643024625862983, 0.20365631372463122, 0.8332072508343766,
	0.20432979083966063, 0.8077130814933154, 0.4468638963441689, 0.8265771496467399,
	0.8233729551633613, 0.6045073671785818, 0.9201269555277747, 0.9268532121826473,
	0.514624486854519, 0.7860449890934393, 0.8779441943858521, 0.2028377587629333,
	0.48840198271808344, 0.9651507142372557, 0.08606022620012488, 0.15366592017208602,
}

var uniformErrors2 = []float64{
	0.9156397649396891, 0.2953663493101917, 0.44531959372889707, 0.8454154129529067,
	0.33926699275466166, 0.3086262779078002, 0.9638121652196933, 0.6433556696667986,
	0.526185709372222, 0.25381076984217443, 0.6016177661799806, 0.034843266341573975,
	0.35561684078721767, 0.5778443744884416, 0.8428720754691716, 0.36611688713533463,
	0.7194575907792212, 0.5103484627080792, 0.7672003708428182, 0.8653176767820351,
	0.307348347776747, 0.7895853511651306, 0.7251737196429471, 0.22669810045300176,
	0.7357756559313744, 0.8752949641948364, 0.0918210281668792, 0.025532291807203844,
	0.14753000242575642, 0.17510702904831177, 0.1409557324906403, 0.9362840503945172,
	0.057274662061996495, 0.5938480327534462, 0.6904771957114895, 0.023047043041938164,
	0.8378119426049521, 0.8688267939144365, 0.01986166881139606, 0.9689537356193153,
	0.5218616726385068, 0.38732695037289044, 0.6237109014183825, 0.5535429581348646,
	0.6701587433806745, 0.08528015736254468, 0.5588008984149891, 0.27830200251679693,
	0.22372069901411795, 0.9913718928403314, 0.6229004418195285, 0.10764636969235764,
	0.974010090424349, 0.602645174705955, 0.9424108041584044, 0.19406456191434784,
	0.3420138377561993, 0.7368112569189147, 0.9061556743626615, 0.11386937916063467,
	0.7480592445397657, 0.7120959234728104, 0.39865325118316, 0.11135378435364796,
	0.8529119916073341, 0.7457204238705408, 0.19644872990831697, 0.3489340344518195,
	0.6352415650263891, 0.8087182449126226, 0.42836314698018274, 0.7524322835725252,
	0.8824669389009181, 0.9588398716094788, 0.4641246716224311, 0.8205425132507805,
	0.9557925453223025, 0.7953184521849812, 0.21401159772302258, 0.3530525288118177,
	0.5003842519663347, 0.17185619209567815, 0.37924854647686557, 0.5506539313445389,
	0.1364424298126241, 0.6932922399903502, 0.3260734844748724, 0.792784914066055,
	0.9667700428626089, 0.621659820148326, 0.0382380161612178, 0.09064889385238639,
	0.3017758301193243, 0.4321860201017945, 0.8263286358373434, 0.4743489359539802,
	0.9552836667726797, 0.5867379075004149, 0.986452226650085, 0.718757955821917,
}
