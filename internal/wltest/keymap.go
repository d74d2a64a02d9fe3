package wltest

// USKeymap is a trimmed-down version of the keymap that compositors
// send for the us layout, in the same form as libxkbcommon serializes
// it.
const USKeymap = `xkb_keymap {
xkb_keycodes "evdev+aliases(qwerty)" {
	minimum = 8;
	maximum = 255;
	<ESC>                = 9;
	<AE01>               = 10;
	<AE02>               = 11;
	<AE03>               = 12;
	<BKSP>               = 22;
	<TAB>                = 23;
	<AD01>               = 24;
	<AD02>               = 25;
	<AD03>               = 26;
	<RTRN>               = 36;
	<LCTL>               = 37;
	<AC01>               = 38;
	<AC02>               = 39;
	<AC03>               = 40;
	<LFSH>               = 50;
	<AB01>               = 52;
	<SPCE>               = 65;
	<CAPS>               = 66;
	<FK01>               = 67;
	<NMLK>               = 77;
	<KP7>                = 79;
	<KP1>                = 87;
	<LVL3>               = 92;
	<KPEN>               = 104;
	indicator 1 = "Caps Lock";
	indicator 2 = "Num Lock";
	alias <LatQ>         = <AD01>;
	alias <LatA>         = <AC01>;
};

xkb_types "complete" {
	virtual_modifiers NumLock,Alt,LevelThree;

	type "ONE_LEVEL" {
		modifiers= none;
		level_name[1]= "Any";
	};
	type "TWO_LEVEL" {
		modifiers= Shift;
		map[Shift]= 2;
		level_name[1]= "Base";
		level_name[2]= "Shift";
	};
	type "ALPHABETIC" {
		modifiers= Shift+Lock;
		map[Shift]= 2;
		map[Lock]= 2;
		level_name[1]= "Base";
		level_name[2]= "Caps";
	};
	type "KEYPAD" {
		modifiers= Shift+NumLock;
		map[NumLock]= 2;
		level_name[1]= "Base";
		level_name[2]= "Number";
	};
};

xkb_compatibility "complete" {
	virtual_modifiers NumLock,Alt,LevelThree;

	interpret.useModMapMods= AnyLevel;
	interpret.repeat= False;
	interpret Shift_L+AnyOfOrNone(all) {
		action= SetMods(modifiers=Shift,clearLocks);
	};
	interpret Num_Lock+AnyOf(all) {
		virtualModifier= NumLock;
		action= LockMods(modifiers=NumLock);
	};
	interpret ISO_Level3_Shift+AnyOf(all) {
		virtualModifier= LevelThree;
		useModMapMods=level1;
		action= SetMods(modifiers=LevelThree,clearLocks);
	};
	interpret Caps_Lock+AnyOfOrNone(all) {
		action= LockMods(modifiers=Lock);
	};
	indicator "Caps Lock" {
		whichModState= locked;
		modifiers= Lock;
	};
};

xkb_symbols "pc+us+inet(evdev)" {
	name[Group1]="English (US)";

	key <ESC>                {	[          Escape ] };
	key <AE01>               {	[               1,          exclam ] };
	key <AE02>               {	[               2,              at ] };
	key <AE03>               {	[               3,      numbersign ] };
	key <BKSP>               {	[       BackSpace,       BackSpace ] };
	key <TAB>                {	[             Tab,    ISO_Left_Tab ] };
	key <AD01>               {
		type= "ALPHABETIC",
		symbols[Group1]= [               q,               Q ]
	};
	key <AD02>               {	[               w,               W ] };
	key <AD03>               {	[               e,               E ] };
	key <RTRN>               {	[          Return ] };
	key <LCTL>               {	[       Control_L ] };
	key <AC01>               {	[               a,               A ] };
	key <AC02>               {	[               s,               S ] };
	key <AC03>               {	[               d,               D ] };
	key <LFSH>               {	[         Shift_L ] };
	key <AB01>               {	[               z,               Z ] };
	key <SPCE>               {	[           space ] };
	key <CAPS>               {
		repeat= No,
		symbols[Group1]= [       Caps_Lock ],
		actions[Group1]= [ LockMods(modifiers=Lock) ]
	};
	key <FK01>               {	[              F1 ] };
	key <NMLK>               {	[        Num_Lock ] };
	key <KP7>                {	[         KP_Home,            KP_7 ] };
	key <KP1>                {	[          KP_End,            KP_1 ] };
	key <LVL3>               {
		type= "ONE_LEVEL",
		symbols[Group1]= [ ISO_Level3_Shift ]
	};
	key <KPEN>               {	[        KP_Enter ] };
	modifier_map Shift { <LFSH> };
	modifier_map Lock { <CAPS> };
	modifier_map Control { <LCTL> };
	modifier_map Mod2 { <NMLK> };
	modifier_map Mod5 { <LVL3> };
};

};
`
